package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

type csvDecoder struct{}

func (csvDecoder) CanDecode(filename string) bool {
	return hasSuffix(filename, ".csv", ".tsv")
}

func (csvDecoder) Decode(content []byte, filename string) ([]Record, error) {
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	if hasSuffix(filename, ".tsv") {
		r.Comma = '\t'
	}

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	m := newRowMapper(header)
	var recs []Record
	for line := 2; ; line++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		recs = append(recs, m.record(row))
	}
	return recs, nil
}

// rowMapper maps tabular rows onto records by header name. Unknown columns
// are ignored; fields without a column and empty cells stay NaN.
type rowMapper struct {
	cols []*field
}

func newRowMapper(header []string) rowMapper {
	cols := make([]*field, len(header))
	for i, h := range header {
		if f, ok := lookupField(h); ok {
			f := f
			cols[i] = &f
		}
	}
	return rowMapper{cols: cols}
}

func (m rowMapper) record(row []string) Record {
	rec := Blank()
	for i, cell := range row {
		if i >= len(m.cols) || m.cols[i] == nil {
			continue
		}
		*m.cols[i].ref(&rec) = parseMeasure(cell)
	}
	return rec
}
