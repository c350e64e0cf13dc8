package summary

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Loader reads summary exports from a results directory.
type Loader struct {
	dir    string
	schema *SchemaChecker
	log    logrus.FieldLogger
}

// NewLoader creates a loader for dir.
func NewLoader(dir string, log logrus.FieldLogger) (*Loader, error) {
	schema, err := NewSchemaChecker()
	if err != nil {
		return nil, err
	}

	return &Loader{
		dir:    dir,
		schema: schema,
		log:    log,
	}, nil
}

// Load returns the parsed export named file, or nil if it is missing,
// unreadable or not valid JSON. Load never fails: a run without usable
// data is still reported, with every statistic null.
func (l *Loader) Load(file string) *Document {
	path := filepath.Join(l.dir, file)
	log := l.log.WithField("file", path)

	data, err := os.ReadFile(path) //nolint:gosec // file names come from the built-in catalogue
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("Summary export not found, reporting run without data")
		} else {
			log.WithError(err).Warn("Failed to read summary export")
		}
		return nil
	}

	doc, err := ParseDocument(data)
	if err != nil {
		log.WithError(err).Warn("Ignoring malformed summary export")
		return nil
	}

	if violations := l.schema.Check(data); len(violations) > 0 {
		log.WithFields(logrus.Fields{
			"violations": len(violations),
			"details":    violations.Error(),
		}).Warn("Summary export does not match the expected shape")
	}

	log.WithField("metrics", len(doc.groups)).Debug("Loaded summary export")
	return doc
}
