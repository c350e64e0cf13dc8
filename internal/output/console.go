// Package output writes the command-line output of the report generator.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/umi000/AMMA-Stress/internal/config"
	"github.com/umi000/AMMA-Stress/internal/report"
	"github.com/umi000/AMMA-Stress/internal/summary"
)

// ConsoleConfig configures a Console.
type ConsoleConfig struct {
	Writer      io.Writer
	NoColor     bool
	ForceColors bool
}

// Console writes user-facing output to stdout. Diagnostics go through the
// logger instead so that stdout stays machine-readable.
type Console struct {
	writer io.Writer
	colors *ColorScheme
}

// NewConsole creates a console. Colors are used only on a terminal unless
// forced, and never when NoColor is set.
func NewConsole(cfg ConsoleConfig) *Console {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}

	useColors := !cfg.NoColor && (cfg.ForceColors || (isTerminal(cfg.Writer) && supportsColors()))

	colors := NoColorScheme()
	if useColors {
		colors = ForcedColorScheme()
	}

	return &Console{
		writer: cfg.Writer,
		colors: colors,
	}
}

// ReportWritten prints the one-line confirmation of a generated report.
func (c *Console) ReportWritten(path string) {
	fmt.Fprintf(c.writer, "Report written to %s\n", c.colors.Path.Sprint(path))
}

// Rows prints the report rows as a console table with the same columns and
// formatting as the HTML report.
func (c *Console) Rows(rows []report.Row) {
	body := make([][]string, 0, len(rows))
	for _, row := range rows {
		line := make([]string, 0, len(report.Columns)+2)
		line = append(line, c.colors.Case.Sprint(row.Name), row.Description)

		for _, col := range report.Columns {
			line = append(line, c.colorCell(col, row.Metrics.Get(col.Field)))
		}
		body = append(body, line)
	}

	c.table(report.Headers(), body)
}

// Cases prints the case catalogue.
func (c *Console) Cases(cases []config.Case) {
	body := make([][]string, len(cases))
	for i, cs := range cases {
		body[i] = []string{fmt.Sprintf("%d", i+1), cs.File, c.colors.Case.Sprint(cs.Name), cs.Description}
	}

	c.table([]string{"#", "File", "Case", "Description"}, body)
}

// JSON prints v as indented JSON.
func (c *Console) JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	_, err = fmt.Fprintln(c.writer, string(data))
	return err
}

// colorCell formats a statistic, highlighting failures and muting gaps.
func (c *Console) colorCell(col report.Column, v summary.Value) string {
	text := col.Format(v)

	n, ok := v.Get()
	switch {
	case !ok:
		return c.colors.Muted.Sprint(text)
	case col.Field == summary.FieldFailedRate && n > 0:
		return c.colors.Error.Sprint(text)
	case col.Field == summary.FieldFailedRate:
		return c.colors.Success.Sprint(text)
	default:
		return text
	}
}

func (c *Console) table(headers []string, rows [][]string) {
	colored := make([]string, len(headers))
	for i, h := range headers {
		colored[i] = c.colors.Header.Sprint(h)
	}

	table := tablewriter.NewWriter(c.writer)
	table.SetHeader(colored)

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("│")
	table.SetRowSeparator("─")
	table.SetHeaderLine(true)
	table.SetBorder(true)
	table.SetTablePadding(" ")
	table.SetNoWhiteSpace(false)

	table.AppendBulk(rows)
	table.Render()
}
