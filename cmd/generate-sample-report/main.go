package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/umi000/AMMA-Stress/internal/report"
)

// sampleRun holds the handful of statistics a k6 summary export needs for
// a populated report row.
type sampleRun struct {
	file       string
	requests   float64
	rate       float64
	avg        float64
	min        float64
	med        float64
	max        float64
	p95        float64
	failedRate float64
	vusMax     float64
}

// The 7000 VU run is left out so the preview also shows a row without data.
var sampleRuns = []sampleRun{
	{file: "smoke.json", requests: 90, rate: 8.73, avg: 142.6, min: 88.1, med: 131, max: 412.9, p95: 301.4, failedRate: 0, vusMax: 3},
	{file: "load.json", requests: 11873, rate: 131.92, avg: 388.2, min: 61.5, med: 290.7, max: 4120.3, p95: 1204.6, failedRate: 0.0021, vusMax: 50},
	{file: "load-500.json", requests: 64210, rate: 535.08, avg: 1893.4, min: 72.9, med: 1402.2, max: 29871.5, p95: 6120.8, failedRate: 0.0567, vusMax: 500},
}

func main() {
	resultsDir := "sample-results"
	if len(os.Args) > 1 {
		resultsDir = os.Args[1]
	}

	if err := writeSampleExports(resultsDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	outputPath := filepath.Join(resultsDir, "index.html")
	err := report.Generate(report.Options{
		ResultsDir: resultsDir,
		OutputPath: outputPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sample report generated: %s\n", outputPath)
}

func writeSampleExports(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	for _, run := range sampleRuns {
		data, err := json.MarshalIndent(run.export(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", run.file, err)
		}
		if err := os.WriteFile(filepath.Join(dir, run.file), data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", run.file, err)
		}
	}
	return nil
}

// export builds the handleSummary document k6 would have written.
func (r sampleRun) export() map[string]interface{} {
	values := func(v map[string]float64) map[string]interface{} {
		return map[string]interface{}{"values": v}
	}

	iterations := r.requests / 3
	failed := r.requests * r.failedRate

	return map[string]interface{}{
		"metrics": map[string]interface{}{
			"http_reqs":          values(map[string]float64{"count": r.requests, "rate": r.rate}),
			"http_req_duration":  values(map[string]float64{"avg": r.avg, "min": r.min, "med": r.med, "max": r.max, "p(95)": r.p95}),
			"http_req_failed":    values(map[string]float64{"rate": r.failedRate, "passes": failed, "fails": r.requests - failed}),
			"iterations":         values(map[string]float64{"count": iterations, "rate": r.rate / 3}),
			"iteration_duration": values(map[string]float64{"avg": r.avg * 3}),
			"vus_max":            values(map[string]float64{"value": r.vusMax}),
		},
	}
}
