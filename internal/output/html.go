package output

import (
	"bytes"
	"html/template"

	"github.com/supportkit/logtriage/internal/domain"
)

// reportTmpl is the self-contained human report: inline styling only,
// no external assets, so the file can be mailed around during an
// incident.
var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<title>Log Triage Report</title>
<style>
  body { font-family: Arial, sans-serif; margin: 40px; }
  table { border-collapse: collapse; width: 50%; }
  th, td { border: 1px solid #ccc; padding: 8px; text-align: left; }
  th { background-color: #f2f2f2; }
  .error { color: red; }
  .muted { color: #888; }
</style>
</head>
<body>
<h1>Log Triage Report</h1>
<p><strong>File:</strong> {{.File}}</p>
<p><strong>Generated:</strong> {{.GeneratedAt}}</p>
<p><strong>Total lines:</strong> {{.TotalLines}}</p>
<p><strong>Parsed lines:</strong> {{.ParsedLines}}</p>
<p><strong>Invalid lines:</strong> {{.InvalidLines}}</p>

<h2>Log Levels</h2>
<ul>
  <li>INFO: {{.LevelCounts.Info}}</li>
  <li>WARNING: {{.LevelCounts.Warning}}</li>
  <li class="error">ERROR: {{.LevelCounts.Error}}</li>
</ul>

<h2>Top ERROR Paths</h2>
<table>
  <tr><th>Path</th><th>Count</th></tr>
{{- range .TopErrorPaths}}
  <tr><td>{{.Path}}</td><td>{{.Count}}</td></tr>
{{- else}}
  <tr><td colspan="2" class="muted">(none)</td></tr>
{{- end}}
</table>
</body>
</html>
`))

// RenderHTML renders the human-readable report document. It is total:
// any well-formed report renders.
func RenderHTML(report domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
