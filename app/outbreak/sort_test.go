package outbreak

import (
	"testing"
)

func sortFixture(t *testing.T) *Table {
	t.Helper()
	table, err := NewAssembler().Run([]Record{
		{Name: "Alpha", Deaths: intPtr(10)},
		{Name: "Bravo"}, // no data
		{Name: "Charlie", Deaths: intPtr(30)},
		{Name: "Delta", Deaths: intPtr(20)},
		{Name: "Echo"}, // no data
		{Name: "Total:", Deaths: intPtr(60), IsTotal: true},
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	return table
}

func names(records []Record) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.Name
	}
	return out
}

func checkOrder(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %d records, got: %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected order %v, got: %v", want, got)
		}
	}
}

func TestSortedDescendingNullsLast(t *testing.T) {
	records := sortFixture(t).Sorted(SortSpec{Field: SortDeaths, Descending: true})
	checkOrder(t, names(records), []string{"Charlie", "Delta", "Alpha", "Bravo", "Echo"})
}

func TestSortedAscendingNullsStillLast(t *testing.T) {
	records := sortFixture(t).Sorted(SortSpec{Field: SortDeaths})
	checkOrder(t, names(records), []string{"Alpha", "Delta", "Charlie", "Bravo", "Echo"})
}

func TestSortedNullsFirst(t *testing.T) {
	records := sortFixture(t).Sorted(SortSpec{Field: SortDeaths, Descending: true, NullsFirst: true})
	checkOrder(t, names(records), []string{"Bravo", "Echo", "Charlie", "Delta", "Alpha"})
}

func TestSortedExcludesTotal(t *testing.T) {
	for _, rec := range sortFixture(t).Sorted(SortSpec{Field: SortDeaths}) {
		if rec.IsTotal {
			t.Fatal("Expected the aggregate record to be excluded from listings")
		}
	}
}

func TestParseSortField(t *testing.T) {
	if _, err := ParseSortField("cases-per-1m"); err != nil {
		t.Errorf("Expected 'cases-per-1m' to be valid, got: %v", err)
	}
	if _, err := ParseSortField("population"); err == nil {
		t.Error("Expected error for unknown sort field, got none")
	}
}
