package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CaseCount is the number of runs the report always contains.
const CaseCount = 4

// CaseProblem is one defect found in the case catalogue. Case is the
// index of the offending entry, or -1 for the catalogue as a whole.
type CaseProblem struct {
	Case    int
	Field   string
	Message string
}

func (p *CaseProblem) Error() string {
	if p.Case < 0 {
		return p.Message
	}
	return fmt.Sprintf("case %d %s: %s", p.Case+1, p.Field, p.Message)
}

// CatalogueError lists every problem of an invalid case catalogue.
type CatalogueError struct {
	Problems []*CaseProblem
}

func (e *CatalogueError) Error() string {
	switch len(e.Problems) {
	case 0:
		return "invalid case catalogue"
	case 1:
		return "invalid case catalogue: " + e.Problems[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "invalid case catalogue (%d problems):", len(e.Problems))
	for _, p := range e.Problems {
		sb.WriteString("\n  - ")
		sb.WriteString(p.Error())
	}
	return sb.String()
}

func (e *CatalogueError) add(index int, field, message string) {
	e.Problems = append(e.Problems, &CaseProblem{Case: index, Field: field, Message: message})
}

// Validate checks that the catalogue holds exactly CaseCount well-formed
// cases with distinct file names.
//
// Returns nil if valid, or a *CatalogueError listing every problem.
func (c *Catalogue) Validate() error {
	errs := &CatalogueError{}

	if len(c.Cases) != CaseCount {
		errs.add(-1, "", fmt.Sprintf("expected %d cases, got %d", CaseCount, len(c.Cases)))
	}

	seen := make(map[string]int, len(c.Cases))
	for i, cs := range c.Cases {
		validateCase(i, &cs, errs)

		if first, ok := seen[cs.File]; ok && cs.File != "" {
			errs.add(i, "file", fmt.Sprintf("duplicate file %q (also case %d)", cs.File, first+1))
			continue
		}
		seen[cs.File] = i
	}

	if len(errs.Problems) > 0 {
		return errs
	}
	return nil
}

func validateCase(i int, cs *Case, errs *CatalogueError) {
	if cs.Name == "" {
		errs.add(i, "name", "a display name is required")
	}

	switch {
	case cs.File == "":
		errs.add(i, "file", "a summary file is required")
	case filepath.Base(cs.File) != cs.File:
		errs.add(i, "file", fmt.Sprintf("%q must be a bare file name inside the results directory", cs.File))
	case strings.ToLower(filepath.Ext(cs.File)) != ".json":
		errs.add(i, "file", fmt.Sprintf("%q is not a .json summary export", cs.File))
	}
}
