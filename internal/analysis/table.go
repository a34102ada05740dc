package analysis

import (
	"errors"

	"github.com/KaramelBytes/winestats/internal/stats"
)

// Decimals is the fixed number of decimals used for table cells.
const Decimals = 3

// Measures are the table rows, in display order.
var Measures = []string{"Mean", "Median", "Mode"}

// ErrEmptyStats is returned when a table is requested for an empty mapping.
var ErrEmptyStats = errors.New("no group statistics to tabulate")

// Table is a render-ready statistics table: one row per measure, one column
// per group key.
type Table struct {
	Title   string   `json:"title" yaml:"title"`
	Columns []string `json:"columns" yaml:"columns"`
	Rows    []Row    `json:"rows" yaml:"rows"`
}

// Row holds the formatted cells of one measure.
type Row struct {
	Measure string   `json:"measure" yaml:"measure"`
	Values  []string `json:"values" yaml:"values"`
}

// ToTable lays out a statistics mapping as a table with the Mean, Median and
// Mode rows and one column per group in mapping order. Cells are fixed to
// three decimals.
func ToTable(m stats.Mapping, title string) (*Table, error) {
	if len(m) == 0 {
		return nil, ErrEmptyStats
	}
	t := &Table{
		Title:   title,
		Columns: m.Keys(),
		Rows:    make([]Row, 0, len(Measures)),
	}
	for _, measure := range Measures {
		row := Row{Measure: measure, Values: make([]string, 0, len(m))}
		for _, g := range m {
			row.Values = append(row.Values, FormatFixed(measureValue(g.Entry, measure), Decimals))
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func measureValue(e stats.Entry, measure string) float64 {
	switch measure {
	case "Mean":
		return e.Mean
	case "Median":
		return e.Median
	default:
		return e.Mode
	}
}
