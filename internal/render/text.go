package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/KaramelBytes/winestats/internal/analysis"
)

var (
	bold  = color.New(color.Bold).SprintFunc()
	blue  = color.New(color.FgBlue).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

// WriteText renders rep as aligned columns for a terminal. Colors follow
// color.NoColor, which is set when the output is not a TTY.
func WriteText(w io.Writer, rep *analysis.Report) error {
	tables := rep.Tables()
	if len(tables) == 0 {
		_, err := fmt.Fprintln(w, "(no statistics)")
		return err
	}
	for i, t := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeTextTable(w, t); err != nil {
			return err
		}
	}
	return nil
}

func writeTextTable(w io.Writer, t *analysis.Table) error {
	widths := make([]int, len(t.Columns)+1)
	widths[0] = len("Measure")
	for _, r := range t.Rows {
		widths[0] = max(widths[0], len(r.Measure))
	}
	for j, c := range t.Columns {
		widths[j+1] = len(c)
		for _, r := range t.Rows {
			widths[j+1] = max(widths[j+1], len(r.Values[j]))
		}
	}

	var b strings.Builder
	b.WriteString(bold(blue(t.Title)) + "\n")
	b.WriteString(bold(fmt.Sprintf("%-*s", widths[0], "Measure")))
	for j, c := range t.Columns {
		b.WriteString("  " + bold(fmt.Sprintf("%*s", widths[j+1], c)))
	}
	b.WriteString("\n")
	for _, r := range t.Rows {
		b.WriteString(fmt.Sprintf("%-*s", widths[0], r.Measure))
		for j, v := range r.Values {
			cell := fmt.Sprintf("%*s", widths[j+1], v)
			if isNonFinite(v) {
				cell = red(cell)
			} else {
				cell = green(cell)
			}
			b.WriteString("  " + cell)
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func isNonFinite(cell string) bool {
	return cell == "NaN" || strings.HasSuffix(cell, "Infinity")
}
