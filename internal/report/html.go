package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/umi000/AMMA-Stress/internal/config"
	"github.com/umi000/AMMA-Stress/internal/summary"
)

const (
	reportTitle  = "AMMA-Stress k6 Report"
	reportFooter = "AMMA / Cage Calls API · k6 stress tests · stress/smoke.js, load.js, load-500.js, load-7000.js"
)

// Column is one statistic column of the report table.
type Column struct {
	Header string
	Field  summary.Field
	Format func(summary.Value) string
}

// Columns lists the statistic columns in table order. The case name and
// description columns always come first.
var Columns = []Column{
	{Header: "Iterations", Field: summary.FieldIterations, Format: FormatNumber},
	{Header: "HTTP requests", Field: summary.FieldRequests, Format: FormatNumber},
	{Header: "Req/s", Field: summary.FieldRequestRate, Format: FormatNumber},
	{Header: "Duration avg", Field: summary.FieldDurationAvg, Format: FormatMillis},
	{Header: "Duration p95", Field: summary.FieldDurationP95, Format: FormatMillis},
	{Header: "Duration min", Field: summary.FieldDurationMin, Format: FormatMillis},
	{Header: "Duration max", Field: summary.FieldDurationMax, Format: FormatMillis},
	{Header: "Failed rate", Field: summary.FieldFailedRate, Format: FormatRate},
	{Header: "VUs max", Field: summary.FieldVUsMax, Format: FormatNumber},
}

// Headers returns all column headers in table order.
func Headers() []string {
	headers := make([]string, 0, len(Columns)+2)
	headers = append(headers, "Case", "Description")
	for _, c := range Columns {
		headers = append(headers, c.Header)
	}
	return headers
}

// Row is one k6 run joined with its extracted statistics.
type Row struct {
	config.Case
	Metrics summary.Metrics
}

// Cells returns the formatted statistic cells of the row in column order.
func (r Row) Cells() []string {
	cells := make([]string, len(Columns))
	for i, c := range Columns {
		cells[i] = c.Format(r.Metrics.Get(c.Field))
	}
	return cells
}

// ReportData contains all data needed to render the HTML report.
type ReportData struct {
	Title   string
	Footer  string
	Headers []string
	Rows    []Row
}

// GenerateHTML renders rows and writes the report to outputPath, creating
// its directory if needed and replacing any existing file.
func GenerateHTML(rows []Row, outputPath string) error {
	html, err := GenerateHTMLString(rows)
	if err != nil {
		return fmt.Errorf("failed to generate HTML: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}

	return nil
}

// GenerateHTMLString renders rows, in the given order, as a complete HTML
// document.
func GenerateHTMLString(rows []Row) (string, error) {
	tmpl, err := template.New("report").Parse(htmlTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	data := ReportData{
		Title:   reportTitle,
		Footer:  reportFooter,
		Headers: Headers(),
		Rows:    rows,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
