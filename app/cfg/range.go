package cfg

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is a half-open [Start, End) slice of a listing, Python style. End
// of -1 means "through the last element". Bounds are clamped against the
// listing length at use; a range that clamps to nothing selects nothing.
type Range struct {
	Start int
	End   int
}

// ParseRange parses the user-supplied "m:n" form. Either side may be empty
// ("m:", ":n", ":"); both must be non-negative integers. This runs during
// configuration loading so a malformed range is rejected before any network
// activity.
func ParseRange(s string) (*Range, error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("invalid range %q: expected M:N", s)
	}

	r := &Range{Start: 0, End: -1}
	var err error
	if lo != "" {
		if r.Start, err = parseBound(lo); err != nil {
			return nil, fmt.Errorf("invalid range %q: %w", s, err)
		}
	}
	if hi != "" {
		if r.End, err = parseBound(hi); err != nil {
			return nil, fmt.Errorf("invalid range %q: %w", s, err)
		}
	}
	return r, nil
}

func parseBound(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bound %q is not an integer", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("bound %d is negative", n)
	}
	return n, nil
}

// Slice returns the clamped [lo, hi) bounds for a listing of n elements. A
// nil Range selects everything.
func (r *Range) Slice(n int) (int, int) {
	if r == nil {
		return 0, n
	}
	lo := min(r.Start, n)
	hi := n
	if r.End >= 0 {
		hi = min(r.End, n)
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
