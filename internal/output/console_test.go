package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/umi000/AMMA-Stress/internal/config"
	"github.com/umi000/AMMA-Stress/internal/report"
	"github.com/umi000/AMMA-Stress/internal/summary"
)

func sampleRows(t *testing.T) []report.Row {
	t.Helper()

	doc, err := summary.ParseDocument([]byte(`{"metrics":{
		"http_reqs":{"values":{"count":900,"rate":29.87}},
		"http_req_failed":{"values":{"rate":0.0567}}
	}}`))
	if err != nil {
		t.Fatalf("failed to parse sample export: %v", err)
	}

	cases := config.Cases()
	return []report.Row{
		{Case: cases[0], Metrics: summary.Extract(doc)},
		{Case: cases[1], Metrics: summary.Extract(nil)},
	}
}

func TestConsole_ReportWritten(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(ConsoleConfig{Writer: &buf})

	console.ReportWritten("results/index.html")

	if got := buf.String(); got != "Report written to results/index.html\n" {
		t.Errorf("ReportWritten() wrote %q", got)
	}
}

func TestConsole_ColorSelection(t *testing.T) {
	tests := []struct {
		name   string
		cfg    ConsoleConfig
		colors bool
	}{
		{name: "buffer is not a terminal", cfg: ConsoleConfig{}, colors: false},
		{name: "forced", cfg: ConsoleConfig{ForceColors: true}, colors: true},
		{name: "no-color wins over forced", cfg: ConsoleConfig{ForceColors: true, NoColor: true}, colors: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.cfg.Writer = &buf

			NewConsole(tt.cfg).ReportWritten("results/index.html")

			if got := strings.Contains(buf.String(), "\x1b["); got != tt.colors {
				t.Errorf("ANSI escapes present = %v, expected %v: %q", got, tt.colors, buf.String())
			}
		})
	}
}

func TestConsole_Rows(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(ConsoleConfig{Writer: &buf})

	console.Rows(sampleRows(t))
	out := buf.String()

	for _, expected := range []string{"Case", "Failed rate", "Smoke", "Load (50 VUs)", "900", "29.87", "5.67%", report.Placeholder} {
		if !strings.Contains(out, expected) {
			t.Errorf("table does not contain %q:\n%s", expected, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("table should not contain ANSI escapes without colors")
	}
	if strings.Index(out, "Smoke") > strings.Index(out, "Load (50 VUs)") {
		t.Error("rows should keep catalogue order")
	}
}

func TestConsole_RowsForcedColors(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(ConsoleConfig{Writer: &buf, ForceColors: true})

	console.Rows(sampleRows(t))

	if !strings.Contains(buf.String(), "\x1b[31m5.67%") {
		t.Errorf("non-zero failed rate should be red:\n%q", buf.String())
	}
}

func TestConsole_Cases(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(ConsoleConfig{Writer: &buf})

	console.Cases(config.Cases())
	out := buf.String()

	for _, c := range config.Cases() {
		if !strings.Contains(out, c.File) || !strings.Contains(out, c.Name) {
			t.Errorf("catalogue table does not list %s", c.File)
		}
	}
}

func TestConsole_JSON(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(ConsoleConfig{Writer: &buf})

	if err := console.JSON(summary.Extract(nil)); err != nil {
		t.Fatalf("JSON() returned error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != len(summary.Rules) {
		t.Errorf("decoded %d fields, expected %d", len(decoded), len(summary.Rules))
	}
	if v, ok := decoded["vus_max"]; !ok || v != nil {
		t.Errorf("vus_max = %v, expected null", v)
	}
}
