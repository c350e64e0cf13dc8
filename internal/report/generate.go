package report

import (
	"github.com/sirupsen/logrus"

	"github.com/umi000/AMMA-Stress/internal/config"
	"github.com/umi000/AMMA-Stress/internal/summary"
)

// Options configures a report run.
type Options struct {
	// ResultsDir holds the k6 summary exports
	ResultsDir string

	// OutputPath is the HTML file to write
	OutputPath string

	// Cases defaults to the built-in catalogue
	Cases []config.Case

	Logger logrus.FieldLogger
}

// BuildRows loads and extracts every case, keeping catalogue order.
// Missing or malformed exports give rows with every statistic null.
func BuildRows(loader *summary.Loader, cases []config.Case) []Row {
	rows := make([]Row, len(cases))
	for i, c := range cases {
		rows[i] = Row{
			Case:    c,
			Metrics: summary.Extract(loader.Load(c.File)),
		}
	}
	return rows
}

// Collect builds the report rows for opts without writing anything.
func Collect(opts Options) ([]Row, error) {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	cases := opts.Cases
	if cases == nil {
		cases = config.Cases()
	}

	loader, err := summary.NewLoader(opts.ResultsDir, log)
	if err != nil {
		return nil, err
	}

	rows := BuildRows(loader, cases)

	var empty int
	for _, r := range rows {
		if r.Metrics.IsEmpty() {
			empty++
		}
	}
	log.WithFields(logrus.Fields{
		"cases":   len(rows),
		"no_data": empty,
	}).Debug("Collected report rows")

	return rows, nil
}

// Generate runs the whole pipeline: load, extract, render and write.
// Only failures to render or write the report are returned.
func Generate(opts Options) error {
	rows, err := Collect(opts)
	if err != nil {
		return err
	}

	return GenerateHTML(rows, opts.OutputPath)
}
