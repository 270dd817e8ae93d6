package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lysyi3m/coronactl/app/outbreak"
)

// Selection names the single-field rows requested on the command line.
type Selection struct {
	Latest    bool
	Closed    bool
	Active    bool
	Recovered bool
	Dead      bool
	Serious   bool
}

// Renderer formats snapshot data for the terminal. Numbers are grouped per
// the user's locale here, at display time only; the data model stays
// locale-independent.
type Renderer struct {
	out     io.Writer
	printer *message.Printer
	color   bool
}

func NewRenderer(out io.Writer, color bool) *Renderer {
	return &Renderer{
		out:     out,
		printer: message.NewPrinter(displayLanguage()),
		color:   color,
	}
}

// displayLanguage resolves the user's locale from the environment, falling
// back to English.
func displayLanguage() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		env := os.Getenv(key)
		if env == "" || env == "C" || env == "POSIX" {
			continue
		}
		// "en_US.UTF-8" -> "en-US"
		locale, _, _ := strings.Cut(env, ".")
		if tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-")); err == nil {
			return tag
		}
	}
	return language.English
}

type row struct {
	color string
	label string
	value string
}

// Overview prints the full situation view for one entity: every field of
// the record as an aligned, colored label/value table.
func (r *Renderer) Overview(rec outbreak.Record) {
	r.writeRows([]row{
		{colBold, "Total Cases:", r.formatInt(rec.Cases)},
		{colYellow, "New Cases:", r.formatInt(rec.NewCases)},
		{colRed, "Total Deaths:", r.formatInt(rec.Deaths)},
		{colRed, "New Deaths:", r.formatInt(rec.NewDeaths)},
		{colGreen, "Total Recovered:", r.formatInt(rec.Recovered)},
		{colPurple, "Active Cases:", r.formatInt(rec.Active)},
		{colOrange, "Serious or Critical:", r.formatInt(rec.Serious)},
		{colCyan, "Total Closed Cases:", r.formatInt(rec.Closed())},
		{colLightGray, "Cases/1M Pop:", r.formatFloat(rec.CasesPerMillion)},
		{colLightGray, "Deaths/1M Pop:", r.formatFloat(rec.DeathsPerMillion)},
	})
}

// Fields prints only the rows the selection asks for, in the order the
// earlier revisions used.
func (r *Renderer) Fields(rec outbreak.Record, sel Selection) {
	var rows []row
	if sel.Active {
		rows = append(rows, row{colPurple, "Active Cases:", r.formatInt(rec.Active)})
	}
	if sel.Latest {
		rows = append(rows,
			row{colYellow, "New Cases:", r.formatInt(rec.NewCases)},
			row{colRed, "New Deaths:", r.formatInt(rec.NewDeaths)})
	}
	if sel.Dead {
		rows = append(rows, row{colRed, "Total Deaths:", r.formatInt(rec.Deaths)})
	}
	if sel.Serious {
		rows = append(rows, row{colOrange, "Serious Cases:", r.formatInt(rec.Serious)})
	}
	if sel.Recovered {
		rows = append(rows, row{colGreen, "Total Recovered:", r.formatInt(rec.Recovered)})
	}
	if sel.Closed {
		rows = append(rows, row{colCyan, "Closed Cases:", r.formatInt(rec.Closed())})
	}
	r.writeRows(rows)
}

// Table prints the full-table view: one line per record, numeric columns
// right-aligned. The caller sorts and slices the records beforehand.
func (r *Renderer) Table(records []outbreak.Record) {
	header := []string{"Country", "Cases", "New", "Deaths", "New", "Recovered", "Active", "Serious", "Cases/1M", "Deaths/1M"}
	lines := [][]string{header}
	for _, rec := range records {
		lines = append(lines, []string{
			rec.Name,
			r.formatInt(rec.Cases),
			r.formatInt(rec.NewCases),
			r.formatInt(rec.Deaths),
			r.formatInt(rec.NewDeaths),
			r.formatInt(rec.Recovered),
			r.formatInt(rec.Active),
			r.formatInt(rec.Serious),
			r.formatFloat(rec.CasesPerMillion),
			r.formatFloat(rec.DeathsPerMillion),
		})
	}

	widths := make([]int, len(header))
	for _, line := range lines {
		for i, cell := range line {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	for n, line := range lines {
		cells := make([]string, len(line))
		for i, cell := range line {
			if i == 0 {
				cells[i] = pad(cell, widths[i], false)
			} else {
				cells[i] = pad(cell, widths[i], true)
			}
		}
		out := strings.Join(cells, "  ")
		if n == 0 {
			out = r.paint(colBold, out)
		}
		fmt.Fprintln(r.out, out)
	}
}

// News prints announcements one per line. Alert entries get a colored "!"
// marker; the stored text itself carries no marker.
func (r *Renderer) News(items []outbreak.NewsItem) {
	for _, item := range items {
		if item.Alert {
			fmt.Fprintf(r.out, "%s %s\n", r.paint(colLightRed, "!"), item.Text)
		} else {
			fmt.Fprintf(r.out, "- %s\n", item.Text)
		}
	}
}

// writeRows prints label/value rows as two aligned columns, labels left,
// values right. Padding happens before coloring so escape codes never skew
// the widths.
func (r *Renderer) writeRows(rows []row) {
	labelWidth, valueWidth := 0, 0
	for _, row := range rows {
		if len(row.label) > labelWidth {
			labelWidth = len(row.label)
		}
		if len(row.value) > valueWidth {
			valueWidth = len(row.value)
		}
	}

	for _, row := range rows {
		line := pad(row.label, labelWidth, false) + "  " + pad(row.value, valueWidth, true)
		fmt.Fprintln(r.out, r.paint(row.color, line))
	}
}

// formatInt renders a nullable integer: "-" for no data, locale-grouped
// digits otherwise. A real zero prints as "0", never as the dash.
func (r *Renderer) formatInt(v *int64) string {
	if v == nil {
		return "-"
	}
	return r.printer.Sprintf("%d", *v)
}

func (r *Renderer) formatFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return r.printer.Sprintf("%v", *v)
}

func (r *Renderer) paint(color, s string) string {
	if !r.color || color == "" {
		return s
	}
	return color + s + colReset
}

func pad(s string, width int, right bool) string {
	if len(s) >= width {
		return s
	}
	fill := strings.Repeat(" ", width-len(s))
	if right {
		return fill + s
	}
	return s + fill
}
