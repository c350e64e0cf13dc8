package cli

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger creates the diagnostics logger. It writes to w (stderr) so that
// stdout only carries command output. verbose forces DebugLevel; otherwise
// level is parsed, falling back to InfoLevel.
func newLogger(w io.Writer, level string, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)

	if verbose {
		log.SetLevel(logrus.DebugLevel)
		return log
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("level", level).Warn("Invalid LOG_LEVEL, defaulting to info")
		return log
	}

	log.SetLevel(parsed)
	return log
}
