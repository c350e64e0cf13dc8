package config

import (
	"strings"
	"testing"
)

func TestCases_BuiltinOrder(t *testing.T) {
	cases := Cases()

	expected := []Case{
		{File: "smoke.json", Name: "Smoke", Description: "3 VUs, 10s"},
		{File: "load.json", Name: "Load (50 VUs)", Description: "10→50 VUs, ~1.5 min"},
		{File: "load-500.json", Name: "Load (500 VUs)", Description: "100→500 VUs, ~2 min"},
		{File: "load-7000.json", Name: "Load (7000 VUs)", Description: "1000→7000 VUs, ~4.5 min"},
	}

	if len(cases) != len(expected) {
		t.Fatalf("Cases() returned %d cases, expected %d", len(cases), len(expected))
	}
	for i, want := range expected {
		if cases[i] != want {
			t.Errorf("Cases()[%d] = %+v, expected %+v", i, cases[i], want)
		}
	}
}

func TestCases_ReturnsCopy(t *testing.T) {
	cases := Cases()
	cases[0].Name = "mutated"

	if Cases()[0].Name != "Smoke" {
		t.Error("Cases() should return a copy of the built-in catalogue")
	}
}

func TestParseCases(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "valid catalogue",
			yaml: `
cases:
  - {file: a.json, name: A}
  - {file: b.json, name: B}
  - {file: c.json, name: C}
  - {file: d.json, name: D}
`,
		},
		{
			name:    "invalid yaml",
			yaml:    "cases: [",
			wantErr: "failed to parse case catalogue",
		},
		{
			name: "too few cases",
			yaml: `
cases:
  - {file: a.json, name: A}
`,
			wantErr: "expected 4 cases, got 1",
		},
		{
			name: "duplicate file",
			yaml: `
cases:
  - {file: a.json, name: A}
  - {file: a.json, name: B}
  - {file: c.json, name: C}
  - {file: d.json, name: D}
`,
			wantErr: "duplicate file",
		},
		{
			name: "missing name and wrong extension",
			yaml: `
cases:
  - {file: a.txt}
  - {file: b.json, name: B}
  - {file: c.json, name: C}
  - {file: d.json, name: D}
`,
			wantErr: "2 problems",
		},
		{
			name: "nested path",
			yaml: `
cases:
  - {file: ../a.json, name: A}
  - {file: b.json, name: B}
  - {file: c.json, name: C}
  - {file: d.json, name: D}
`,
			wantErr: "bare file name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cases, err := ParseCases([]byte(tt.yaml))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ParseCases() returned error: %v", err)
				}
				if len(cases) != CaseCount {
					t.Errorf("ParseCases() returned %d cases, expected %d", len(cases), CaseCount)
				}
				return
			}

			if err == nil {
				t.Fatalf("ParseCases() should fail with %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error should contain %q, got: %v", tt.wantErr, err)
			}
		})
	}
}
