package dataset

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
)

type xlsxDecoder struct{}

func (xlsxDecoder) CanDecode(filename string) bool {
	return hasSuffix(filename, ".xlsx")
}

// Decode reads the first worksheet of the workbook. The first row is the
// header; the remaining rows become records.
func (xlsxDecoder) Decode(content []byte, _ string) ([]Record, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	sheetPath, err := firstSheetPath(zr)
	if err != nil {
		return nil, err
	}
	var shared []string
	if b, ok := readZipFile(zr, "xl/sharedStrings.xml"); ok {
		if shared, err = parseSharedStrings(b); err != nil {
			return nil, err
		}
	}
	b, ok := readZipFile(zr, sheetPath)
	if !ok {
		return nil, fmt.Errorf("worksheet %s not found", sheetPath)
	}
	rows, err := parseSheetRows(b, shared)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	m := newRowMapper(rows[0])
	recs := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		recs = append(recs, m.record(row))
	}
	return recs, nil
}

type xlsxWorkbook struct {
	Sheets []struct {
		Name string `xml:"name,attr"`
		RID  string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sheets>sheet"`
}

type xlsxRelationships struct {
	Items []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// firstSheetPath resolves the ZIP path of the first sheet listed in the
// workbook, falling back to xl/worksheets/sheet1.xml.
func firstSheetPath(zr *zip.Reader) (string, error) {
	const fallback = "xl/worksheets/sheet1.xml"
	wbXML, ok := readZipFile(zr, "xl/workbook.xml")
	if !ok {
		return fallback, nil
	}
	var wb xlsxWorkbook
	if err := xml.Unmarshal(wbXML, &wb); err != nil {
		return "", fmt.Errorf("parse workbook: %w", err)
	}
	if len(wb.Sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}
	relsXML, ok := readZipFile(zr, "xl/_rels/workbook.xml.rels")
	if !ok {
		return fallback, nil
	}
	var rels xlsxRelationships
	if err := xml.Unmarshal(relsXML, &rels); err != nil {
		return "", fmt.Errorf("parse workbook relationships: %w", err)
	}
	for _, r := range rels.Items {
		if r.ID == wb.Sheets[0].RID {
			return normalizeRelPath(r.Target), nil
		}
	}
	return fallback, nil
}

// normalizeRelPath converts relationship targets ("/xl/worksheets/sheet1.xml",
// "worksheets/sheet1.xml") to ZIP entry names.
func normalizeRelPath(rel string) string {
	rel = strings.TrimPrefix(rel, "/")
	if strings.HasPrefix(rel, "xl/") {
		return rel
	}
	return path.Join("xl", rel)
}

func readZipFile(zr *zip.Reader, name string) ([]byte, bool) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, false
		}
		defer rc.Close()
		b, err := io.ReadAll(rc)
		if err != nil {
			return nil, false
		}
		return b, true
	}
	return nil, false
}

type xlsxRichText struct {
	T string `xml:"t"`
	R []struct {
		T string `xml:"t"`
	} `xml:"r"`
}

func (s xlsxRichText) text() string {
	if len(s.R) == 0 {
		return s.T
	}
	var b strings.Builder
	for _, r := range s.R {
		b.WriteString(r.T)
	}
	return b.String()
}

func parseSharedStrings(data []byte) ([]string, error) {
	var sst struct {
		Items []xlsxRichText `xml:"si"`
	}
	if err := xml.Unmarshal(data, &sst); err != nil {
		return nil, fmt.Errorf("parse shared strings: %w", err)
	}
	out := make([]string, len(sst.Items))
	for i, si := range sst.Items {
		out[i] = si.text()
	}
	return out, nil
}

type xlsxSheet struct {
	Rows []struct {
		Cells []struct {
			Ref    string       `xml:"r,attr"`
			Type   string       `xml:"t,attr"`
			Value  string       `xml:"v"`
			Inline xlsxRichText `xml:"is"`
		} `xml:"c"`
	} `xml:"sheetData>row"`
}

// parseSheetRows returns the cell text of every row, placing cells by their
// column reference so that sparse rows keep their alignment.
func parseSheetRows(data []byte, shared []string) ([][]string, error) {
	var sheet xlsxSheet
	if err := xml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("parse worksheet: %w", err)
	}
	rows := make([][]string, 0, len(sheet.Rows))
	for _, r := range sheet.Rows {
		var row []string
		for i, c := range r.Cells {
			col := i
			if c.Ref != "" {
				col = colIndexFromRef(c.Ref)
			}
			if col < 0 || col >= maxColumns {
				continue
			}
			for len(row) <= col {
				row = append(row, "")
			}
			switch c.Type {
			case "s":
				idx, err := strconv.Atoi(strings.TrimSpace(c.Value))
				if err == nil && idx >= 0 && idx < len(shared) {
					row[col] = shared[idx]
				}
			case "inlineStr":
				row[col] = c.Inline.text()
			default:
				row[col] = c.Value
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// maxColumns is the spreadsheet column limit (XFD).
const maxColumns = 16384

// colIndexFromRef maps a cell reference like "C12" to its 0-based column.
// References past the last spreadsheet column yield -1.
func colIndexFromRef(ref string) int {
	idx := 0
	for i := 0; i < len(ref); i++ {
		c := ref[i]
		switch {
		case c >= 'A' && c <= 'Z':
			idx = idx*26 + int(c-'A'+1)
		case c >= 'a' && c <= 'z':
			idx = idx*26 + int(c-'a'+1)
		default:
			return idx - 1
		}
		if idx > maxColumns {
			return -1
		}
	}
	return idx - 1
}
