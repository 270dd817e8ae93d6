package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// noData is the placeholder the source prints in cells that have no figure
// yet. It maps to nil, which is distinct from zero.
const noData = "N/A"

// cleanNumeric prepares a raw numeric cell for parsing: surrounding
// whitespace and the leading "+" of delta columns are stripped, thousands
// separators removed. The result is locale-independent; grouping is
// reapplied only at display time.
func cleanNumeric(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "+")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}

// NormalizeInt converts an integer-kind cell. Empty and "N/A" cells yield
// nil; anything else that fails to parse is a schema violation, not a value.
func NormalizeInt(raw string) (*int64, error) {
	s := cleanNumeric(raw)
	if s == "" || s == noData {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("unexpected non-integer cell %q", strings.TrimSpace(raw))
	}
	return &n, nil
}

// NormalizeFloat converts a float-kind cell under the same rules as
// NormalizeInt.
func NormalizeFloat(raw string) (*float64, error) {
	s := cleanNumeric(raw)
	if s == "" || s == noData {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("unexpected non-numeric cell %q", strings.TrimSpace(raw))
	}
	return &f, nil
}

// NormalizeText converts a text-kind cell: trimmed, otherwise untouched.
func NormalizeText(raw string) string {
	s := strings.TrimSpace(raw)
	if s == noData {
		return ""
	}
	return s
}
