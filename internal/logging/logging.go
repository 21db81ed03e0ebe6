// Package logging builds the stderr logger shared by the validators.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Options selects verbosity. Quiet wins over Verbose.
type Options struct {
	Prefix  string
	Quiet   bool
	Verbose bool
}

// New returns a levelled key/value logger writing to w. The default level
// is Warn so a passing run prints nothing; Verbose lowers it to Debug and
// Quiet discards everything.
func New(w io.Writer, o Options) *log.Logger {
	if o.Quiet {
		w = io.Discard
	}
	level := log.WarnLevel
	if o.Verbose && !o.Quiet {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: o.Prefix,
	})
}
