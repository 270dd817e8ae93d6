package outbreak

import (
	"fmt"
	"sort"
)

// SortField names a numeric record field usable as a sort key for the
// full-table view.
type SortField string

const (
	SortCases            SortField = "cases"
	SortNewCases         SortField = "new-cases"
	SortDeaths           SortField = "deaths"
	SortNewDeaths        SortField = "new-deaths"
	SortRecovered        SortField = "recovered"
	SortActive           SortField = "active"
	SortSerious          SortField = "serious"
	SortCasesPerMillion  SortField = "cases-per-1m"
	SortDeathsPerMillion SortField = "deaths-per-1m"
	SortTests            SortField = "tests"
	SortTestsPerMillion  SortField = "tests-per-1m"
)

// ParseSortField validates a user-supplied sort field name.
func ParseSortField(s string) (SortField, error) {
	switch f := SortField(s); f {
	case SortCases, SortNewCases, SortDeaths, SortNewDeaths, SortRecovered,
		SortActive, SortSerious, SortCasesPerMillion, SortDeathsPerMillion,
		SortTests, SortTestsPerMillion:
		return f, nil
	}
	return "", fmt.Errorf("unknown sort field: %q", s)
}

// SortSpec describes how to order a full-table listing. Records whose sort
// field has no data are excluded from the comparison and placed after all
// comparable records regardless of direction; NullsFirst moves them to the
// front instead.
type SortSpec struct {
	Field      SortField
	Descending bool
	NullsFirst bool
}

// Sorted returns the country records (the aggregate total excluded) ordered
// per spec. The sort is stable, so records tied on the key keep their source
// order.
func (t *Table) Sorted(spec SortSpec) []Record {
	recs := make([]Record, 0, len(t.records))
	for _, rec := range t.records {
		if !rec.IsTotal {
			recs = append(recs, rec)
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		vi, iok := sortValue(recs[i], spec.Field)
		vj, jok := sortValue(recs[j], spec.Field)
		if iok != jok {
			if spec.NullsFirst {
				return !iok
			}
			return iok
		}
		if !iok {
			return false
		}
		if spec.Descending {
			return vi > vj
		}
		return vi < vj
	})

	return recs
}

func sortValue(rec Record, field SortField) (float64, bool) {
	asInt := func(v *int64) (float64, bool) {
		if v == nil {
			return 0, false
		}
		return float64(*v), true
	}
	asFloat := func(v *float64) (float64, bool) {
		if v == nil {
			return 0, false
		}
		return *v, true
	}

	switch field {
	case SortCases:
		return asInt(rec.Cases)
	case SortNewCases:
		return asInt(rec.NewCases)
	case SortDeaths:
		return asInt(rec.Deaths)
	case SortNewDeaths:
		return asInt(rec.NewDeaths)
	case SortRecovered:
		return asInt(rec.Recovered)
	case SortActive:
		return asInt(rec.Active)
	case SortSerious:
		return asInt(rec.Serious)
	case SortCasesPerMillion:
		return asFloat(rec.CasesPerMillion)
	case SortDeathsPerMillion:
		return asFloat(rec.DeathsPerMillion)
	case SortTests:
		return asInt(rec.Tests)
	case SortTestsPerMillion:
		return asInt(rec.TestsPerMillion)
	default:
		return 0, false
	}
}
