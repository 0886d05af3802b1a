// Package cliutil holds the pieces shared by every cmd/<problem> binary:
// logger construction and the run id stamped into history files, following
// matzehuels/stacktower's internal/cli conventions (charmbracelet/log with
// timestamped output to stderr, a -v/--verbose flag toggling debug level).
package cliutil

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// NewLogger builds a logger in stacktower's style: timestamped, writing to
// w, filtered at level.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// RunID returns a fresh identifier stamped into a history CSV's header
// comment, so a batch of history.csv files from a parameter sweep can be
// joined back to their invocation without re-parsing flags.
func RunID() string { return uuid.NewString() }
