package outbreak

import (
	"errors"
	"testing"
)

func intPtr(n int64) *int64 { return &n }

func testRecords() []Record {
	return []Record{
		{Name: "Testland", Cases: intPtr(1200), Active: intPtr(290)},
		{Name: "Examplia", Cases: intPtr(80), Active: intPtr(8)},
		{Name: "Total:", Cases: intPtr(1280), Active: intPtr(298), IsTotal: true},
	}
}

func TestAssemblerRun(t *testing.T) {
	table, err := NewAssembler().Run(testRecords())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if table.Len() != 3 {
		t.Fatalf("Expected 3 records, got: %d", table.Len())
	}

	rec, ok := table.Lookup("Testland")
	if !ok {
		t.Fatal("Expected to find Testland")
	}
	if *rec.Cases != 1200 {
		t.Errorf("Expected 1200 cases, got: %d", *rec.Cases)
	}

	// lookup is case-insensitive
	if _, ok := table.Lookup("  tEsTlAnD "); !ok {
		t.Error("Expected case-insensitive lookup to find Testland")
	}

	total := table.Total()
	if !total.IsTotal {
		t.Error("Expected Total() to return the aggregate record")
	}
	if *total.Cases != 1280 {
		t.Errorf("Expected total cases=1280, got: %d", *total.Cases)
	}
}

func TestAssemblerIdempotent(t *testing.T) {
	records := testRecords()
	first, err := NewAssembler().Run(records)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	second, err := NewAssembler().Run(records)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if first.Len() != second.Len() {
		t.Fatalf("Expected identical sizes, got: %d and %d", first.Len(), second.Len())
	}
	a, b := first.Records(), second.Records()
	for i := range a {
		if a[i].Name != b[i].Name {
			t.Errorf("Expected record %d to be %q in both tables, got: %q", i, a[i].Name, b[i].Name)
		}
	}
}

func TestAssemblerNoTotal(t *testing.T) {
	records := testRecords()[:2]
	_, err := NewAssembler().Run(records)
	if !errors.Is(err, ErrNoTotalRow) {
		t.Fatalf("Expected ErrNoTotalRow, got: %v", err)
	}
}

func TestAssemblerDuplicateTotal(t *testing.T) {
	records := append(testRecords(), Record{Name: "Total:", IsTotal: true})
	_, err := NewAssembler().Run(records)
	if !errors.Is(err, ErrDuplicateTotal) {
		t.Fatalf("Expected ErrDuplicateTotal, got: %v", err)
	}
}

func TestAssemblerDuplicateKeyLastWins(t *testing.T) {
	records := []Record{
		{Name: "Testland", Cases: intPtr(1)},
		{Name: "testland", Cases: intPtr(2)},
		{Name: "Total:", IsTotal: true},
	}
	table, err := NewAssembler().Run(records)
	if err != nil {
		t.Fatalf("Expected duplicate keys to be tolerated, got: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("Expected 2 records after dedup, got: %d", table.Len())
	}
	rec, _ := table.Lookup("Testland")
	if *rec.Cases != 2 {
		t.Errorf("Expected the later record to win, got cases=%d", *rec.Cases)
	}
}

func TestRecordClosed(t *testing.T) {
	rec := Record{Cases: intPtr(1200), Active: intPtr(290)}
	if closed := rec.Closed(); closed == nil || *closed != 910 {
		t.Errorf("Expected closed=910, got: %v", closed)
	}

	rec = Record{Cases: intPtr(1200)}
	if closed := rec.Closed(); closed != nil {
		t.Errorf("Expected nil closed when active is unknown, got: %d", *closed)
	}
}
