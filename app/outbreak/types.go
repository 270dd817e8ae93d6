package outbreak

import (
	"encoding/json"
	"strings"
)

// TotalKey is the reserved table key for the aggregate/global record. The
// trailing colon matches the row label used by the source and cannot occur
// in a country name.
const TotalKey = "total:"

// TimeLayout is the minute-precision local timestamp stored with a snapshot.
const TimeLayout = "2006-01-02 15:04"

// Record holds the statistics for a single entity: one country, or the
// global total. Numeric fields are pointers because the source distinguishes
// "no data yet" from zero; nil preserves that distinction through caching.
type Record struct {
	Name             string   `json:"name"`
	Cases            *int64   `json:"cases"`
	NewCases         *int64   `json:"new_cases"`
	Deaths           *int64   `json:"deaths"`
	NewDeaths        *int64   `json:"new_deaths"`
	Recovered        *int64   `json:"recovered"`
	Active           *int64   `json:"active"`
	Serious          *int64   `json:"serious"`
	CasesPerMillion  *float64 `json:"cases_per_1m"`
	DeathsPerMillion *float64 `json:"deaths_per_1m"`
	Tests            *int64   `json:"tests,omitempty"`
	TestsPerMillion  *int64   `json:"tests_per_1m,omitempty"`
	Continent        string   `json:"continent,omitempty"`
	FirstCase        string   `json:"first_case,omitempty"`
	Outcome          string   `json:"outcome,omitempty"`
	IsTotal          bool     `json:"is_total,omitempty"`
}

// Key returns the lookup key for the record: the lower-cased entity name,
// or TotalKey for the aggregate record.
func (r Record) Key() string {
	if r.IsTotal {
		return TotalKey
	}
	return strings.ToLower(strings.TrimSpace(r.Name))
}

// Closed returns the number of closed cases (total minus active), or nil
// when either operand has no data.
func (r Record) Closed() *int64 {
	if r.Cases == nil || r.Active == nil {
		return nil
	}
	n := *r.Cases - *r.Active
	return &n
}

// NewsItem is one announcement from the source's news list. Order is
// chronological as published and must survive caching.
type NewsItem struct {
	Text  string `json:"text"`
	Alert bool   `json:"alert"`
}

// Snapshot is the unit of caching: everything one successful fetch produced.
// It is written wholesale and never merged with a previous snapshot.
type Snapshot struct {
	FetchedAt string     `json:"time"`
	News      []NewsItem `json:"news"`
	Table     *Table     `json:"table"`
}

// Table maps entity keys to records while preserving the source row order
// for full-table listings. Exactly one record is the aggregate total.
type Table struct {
	records []Record
	index   map[string]int
}

// Len returns the number of records, the aggregate included.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns all records in source order.
func (t *Table) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Lookup resolves an entity by name, case-insensitively.
func (t *Table) Lookup(name string) (Record, bool) {
	pos, ok := t.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Record{}, false
	}
	return t.records[pos], true
}

// Total returns the aggregate/global record.
func (t *Table) Total() Record {
	return t.records[t.index[TotalKey]]
}

// MarshalJSON serializes the table as an ordered array of records, so the
// cached document keeps the source row order.
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.records)
}

// UnmarshalJSON rebuilds the key index and re-checks the one-total
// invariant, so a tampered or truncated cache file fails to load instead of
// producing a table with no aggregate record.
func (t *Table) UnmarshalJSON(data []byte) error {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return err
	}
	rebuilt, err := newTable(records)
	if err != nil {
		return err
	}
	*t = *rebuilt
	return nil
}
