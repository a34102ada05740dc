package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/KaramelBytes/winestats/internal/analysis"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="report-id" content="{{.ID}}">
<title>Wine Statistics</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; margin-bottom: 2rem; }
caption { font-weight: bold; padding: 0.5rem; }
th, td { border: 1px solid #999; padding: 0.3rem 0.8rem; }
td { text-align: right; }
td:first-child { text-align: left; }
</style>
</head>
<body>
<div class="App">
{{- range .Tables}}
<table>
<caption>{{.Title}}</caption>
<thead>
<tr><th>Measure</th>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
</thead>
<tbody>
{{- range .Rows}}
<tr><td>{{.Measure}}</td>{{range .Values}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
{{- end}}
</div>
</body>
</html>
`

var page = template.Must(template.New("page").Parse(pageTemplate))

type pageData struct {
	ID     string
	Tables []*analysis.Table
}

// WriteHTML renders rep as a standalone page with one captioned table per
// feature that has statistics. A report without statistics yields an empty
// page body.
func WriteHTML(w io.Writer, rep *analysis.Report) error {
	if err := page.Execute(w, pageData{ID: rep.ID, Tables: rep.Tables()}); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
