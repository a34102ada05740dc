package analysis

import (
	"fmt"
	"strings"
)

// Markdown renders the report as a header block followed by one table per
// feature. Features without groups are omitted.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[WINE STATISTICS]\n")
	if r.Source != "" {
		b.WriteString(fmt.Sprintf("Source: %s\n", r.Source))
	}
	b.WriteString(fmt.Sprintf("Records: %d\n", r.Records))
	if r.GroupBy != "" {
		b.WriteString(fmt.Sprintf("Grouped by: %s\n", r.GroupBy))
	}
	tables := r.Tables()
	if len(tables) == 0 {
		b.WriteString("\n(no statistics)\n")
		return b.String()
	}
	for _, t := range tables {
		b.WriteString("\n")
		b.WriteString(t.Markdown())
	}
	return b.String()
}

// Markdown renders the table as a caption line and a pipe table.
func (t *Table) Markdown() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("### %s\n\n", t.Title))
	b.WriteString("| Measure |")
	for _, c := range t.Columns {
		b.WriteString(" " + safeCell(c) + " |")
	}
	b.WriteString("\n|---|")
	for range t.Columns {
		b.WriteString("---:|")
	}
	b.WriteString("\n")
	for _, row := range t.Rows {
		b.WriteString("| " + row.Measure + " |")
		for _, v := range row.Values {
			b.WriteString(" " + v + " |")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func safeCell(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
