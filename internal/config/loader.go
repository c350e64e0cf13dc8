// Package config provides the fixed k6 case catalogue and the runtime
// settings of the report generator.
package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed cases.yaml
var catalogueYAML []byte

// Case describes one k6 run whose summary export becomes a report row.
type Case struct {
	// File is the summary export name inside the results directory
	File string `yaml:"file" json:"file"`

	// Name is shown in bold in the first column
	Name string `yaml:"name" json:"name"`

	// Description summarises the load profile of the run
	Description string `yaml:"description" json:"description"`
}

// Catalogue is the root of the case catalogue document.
type Catalogue struct {
	Cases []Case `yaml:"cases"`
}

var builtinCases = mustParseCases(catalogueYAML)

// Cases returns the built-in catalogue in declaration order.
// The returned slice is a copy and may be modified by the caller.
func Cases() []Case {
	out := make([]Case, len(builtinCases))
	copy(out, builtinCases)
	return out
}

// ParseCases parses and validates a YAML case catalogue.
func ParseCases(data []byte) ([]Case, error) {
	var catalogue Catalogue
	if err := yaml.Unmarshal(data, &catalogue); err != nil {
		return nil, fmt.Errorf("failed to parse case catalogue: %w", err)
	}

	if err := catalogue.Validate(); err != nil {
		return nil, err
	}

	return catalogue.Cases, nil
}

func mustParseCases(data []byte) []Case {
	cases, err := ParseCases(data)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in case catalogue: %v", err))
	}
	return cases
}
