package outbreak

import (
	"errors"
)

var (
	// ErrNoTotalRow means the extracted rows contained no aggregate total.
	// The source schema has changed incompatibly; guessing a total would
	// silently misreport global figures, so assembly fails instead.
	ErrNoTotalRow = errors.New("no aggregate total row in source data")

	// ErrDuplicateTotal means more than one row was marked as the total.
	ErrDuplicateTotal = errors.New("more than one aggregate total row in source data")
)

// Assembler builds a queryable Table out of extracted records.
type Assembler struct{}

func NewAssembler() *Assembler {
	return &Assembler{}
}

// Run assembles records into a Table. A repeated entity key is tolerated
// (last write wins); a missing or duplicated total row is an error.
func (a *Assembler) Run(records []Record) (*Table, error) {
	return newTable(records)
}

func newTable(records []Record) (*Table, error) {
	totals := 0
	for _, rec := range records {
		if rec.IsTotal {
			totals++
		}
	}
	if totals == 0 {
		return nil, ErrNoTotalRow
	}
	if totals > 1 {
		return nil, ErrDuplicateTotal
	}

	t := &Table{
		records: make([]Record, 0, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for _, rec := range records {
		key := rec.Key()
		if pos, ok := t.index[key]; ok {
			t.records[pos] = rec
			continue
		}
		t.index[key] = len(t.records)
		t.records = append(t.records, rec)
	}

	return t, nil
}
