package parser

// Kind declares how a column's cells are normalized.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
)

// Column is one entry of the positional table schema.
type Column struct {
	Field string
	Kind  Kind
}

// tableSchema is the fixed, positional column layout of the source table.
// The source publishes no stable header ids, so extraction trusts column
// order; a reordered source misreads data, which is why any row shorter
// than the required prefix is treated as a schema change and rejected.
var tableSchema = []Column{
	{"name", KindText},
	{"cases", KindInt},
	{"new_cases", KindInt},
	{"deaths", KindInt},
	{"new_deaths", KindInt},
	{"recovered", KindInt},
	{"active", KindInt},
	{"serious", KindInt},
	{"cases_per_1m", KindFloat},
	{"deaths_per_1m", KindFloat},
	{"tests", KindInt},
	{"tests_per_1m", KindInt},
	{"continent", KindText},
	{"first_case", KindText},
}

// requiredColumns is the schema prefix (through deaths/1M) every data row
// must have; the trailing columns were added to the source later and
// default to null when absent.
const requiredColumns = 10
