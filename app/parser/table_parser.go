package parser

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/lysyi3m/coronactl/app/outbreak"
)

// TableParser extracts outbreak records from the statistics page's main
// table.
type TableParser struct{}

func NewTableParser() *TableParser {
	return &TableParser{}
}

// Run parses the page HTML and returns one record per data row, in source
// order. Rows without data cells (header and formatting rows) are skipped;
// a data row that no longer matches the positional schema aborts the whole
// extraction.
func (p *TableParser) Run(data []byte) ([]outbreak.Record, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page HTML: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no statistics table in page")
	}

	var records []outbreak.Record
	var rowErr error
	table.Find("tr").EachWithBreak(func(i int, tr *goquery.Selection) bool {
		cells := tr.Find("td")
		if cells.Length() == 0 {
			return true
		}

		rec, err := p.parseRow(tr, cells)
		if err != nil {
			rowErr = fmt.Errorf("table row %d: %w", i, err)
			return false
		}
		records = append(records, rec)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("statistics table has no data rows")
	}

	slog.Debug("Extracted statistics table", "rows", len(records))
	return records, nil
}

func (p *TableParser) parseRow(tr *goquery.Selection, cells *goquery.Selection) (outbreak.Record, error) {
	texts := make([]string, cells.Length())
	cells.Each(func(i int, td *goquery.Selection) {
		texts[i] = td.Text()
	})

	if len(texts) < requiredColumns {
		return outbreak.Record{}, fmt.Errorf("row has %d cells, schema requires at least %d", len(texts), requiredColumns)
	}

	rec := outbreak.Record{
		IsTotal: isTotalRow(tr, texts[0]),
		Outcome: outcomeCategory(tr),
	}

	for i, col := range tableSchema {
		if i >= len(texts) {
			break
		}
		if err := assignField(&rec, col, texts[i]); err != nil {
			return outbreak.Record{}, fmt.Errorf("column %q: %w", col.Field, err)
		}
	}

	return rec, nil
}

func assignField(rec *outbreak.Record, col Column, raw string) error {
	switch col.Field {
	case "name":
		rec.Name = NormalizeText(raw)
	case "continent":
		rec.Continent = NormalizeText(raw)
	case "first_case":
		rec.FirstCase = NormalizeText(raw)
	case "cases_per_1m", "deaths_per_1m":
		v, err := NormalizeFloat(raw)
		if err != nil {
			return err
		}
		if col.Field == "cases_per_1m" {
			rec.CasesPerMillion = v
		} else {
			rec.DeathsPerMillion = v
		}
	default:
		v, err := NormalizeInt(raw)
		if err != nil {
			return err
		}
		switch col.Field {
		case "cases":
			rec.Cases = v
		case "new_cases":
			rec.NewCases = v
		case "deaths":
			rec.Deaths = v
		case "new_deaths":
			rec.NewDeaths = v
		case "recovered":
			rec.Recovered = v
		case "active":
			rec.Active = v
		case "serious":
			rec.Serious = v
		case "tests":
			rec.Tests = v
		case "tests_per_1m":
			rec.TestsPerMillion = v
		}
	}
	return nil
}

// isTotalRow recognizes the aggregate row either by the source's styling
// class or by its "Total:" label.
func isTotalRow(tr *goquery.Selection, name string) bool {
	if strings.Contains(tr.AttrOr("class", ""), "total_row") {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(name), "total:")
}

// outcomeCategory derives the row's outcome classification from its styling
// classes, ignoring zebra-striping and the total marker.
func outcomeCategory(tr *goquery.Selection) string {
	for _, token := range strings.Fields(tr.AttrOr("class", "")) {
		switch token {
		case "odd", "even", "total_row":
			continue
		default:
			return token
		}
	}
	return ""
}
