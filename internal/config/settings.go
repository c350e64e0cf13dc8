package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultResultsDir is where the k6 summary exports are read from.
	DefaultResultsDir = "results"

	// ReportFile is the name of the generated report inside the results directory.
	ReportFile = "index.html"

	envResultsDir = "RESULTS_DIR"
	envOutput     = "REPORT_OUTPUT"
	envLogLevel   = "LOG_LEVEL"
	envForceColor = "FORCE_COLOR"
)

// Settings holds the runtime configuration of the report generator.
type Settings struct {
	ResultsDir string
	OutputPath string
	LogLevel   string

	// ForceColor enables colored console output even when stdout is not a
	// terminal. Set from FORCE_COLOR; "0" and "false" leave it off.
	ForceColor bool
}

// LoadSettings reads settings from the environment, loading the given .env
// files first. With no files the default ".env" is tried; a missing file is
// not an error.
func LoadSettings(envFiles ...string) (*Settings, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	return &Settings{
		ResultsDir: getEnv(envResultsDir, DefaultResultsDir),
		OutputPath: getEnv(envOutput, ""),
		LogLevel:   getEnv(envLogLevel, "info"),
		ForceColor: isTruthy(getEnv(envForceColor, "")),
	}, nil
}

// ReportPath returns the output file, defaulting to index.html inside the
// results directory.
func (s *Settings) ReportPath() string {
	if s.OutputPath != "" {
		return s.OutputPath
	}
	return filepath.Join(s.ResultsDir, ReportFile)
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "false", "no", "off":
		return false
	}
	return true
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
