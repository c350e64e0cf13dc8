// Package report renders the k6 stress runs into a static HTML table.
package report

// htmlTemplate is the report page. It carries no timestamps so that the
// same summary exports always give the same bytes.
const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>
    * { box-sizing: border-box; }
    body { font-family: system-ui, sans-serif; margin: 0; padding: 24px; background: #0f172a; color: #e2e8f0; }
    h1 { color: #f8fafc; margin-bottom: 8px; }
    .meta { color: #94a3b8; font-size: 14px; margin-bottom: 24px; }
    table { width: 100%; border-collapse: collapse; background: #1e293b; border-radius: 8px; overflow: hidden; }
    th, td { padding: 12px 16px; text-align: left; border-bottom: 1px solid #334155; }
    th { background: #334155; color: #f1f5f9; font-weight: 600; }
    tr:hover { background: #33415540; }
    .pass { color: #86efac; }
    .fail { color: #fca5a5; }
    footer { margin-top: 24px; color: #64748b; font-size: 12px; }
  </style>
</head>
<body>
  <h1>{{.Title}}</h1>
  <p class="meta">Generated from pipeline run. All cases and metrics below.</p>
  <table>
    <thead>
      <tr>{{range .Headers}}
        <th>{{.}}</th>{{end}}
      </tr>
    </thead>
    <tbody>{{range .Rows}}
    <tr>
      <td><strong>{{.Name}}</strong></td>
      <td>{{.Description}}</td>{{range .Cells}}
      <td>{{.}}</td>{{end}}
    </tr>{{end}}
    </tbody>
  </table>
  <footer>{{.Footer}}</footer>
</body>
</html>`
