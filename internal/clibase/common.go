// internal/clibase/common.go
package clibase

import (
	"flag"
	"strings"

	"bammval/internal/report"
	"bammval/internal/validate"
)

// Common holds CLI fields shared by both validators.
type Common struct {
	// Output
	Report string // none|text|json|yaml

	// Misc
	Quiet        bool
	Verbose      bool
	Version      bool
	Help         bool
	ShowExamples bool
}

// Register wires shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	fs.StringVar(&c.Report, "report", report.None, "verdict report on stdout: none | text | json | yaml [none]")
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress diagnostics on stderr [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Verbose, "verbose", false, "log scan details on stderr [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "v", false, "alias of --version")
	fs.BoolVar(&c.Help, "help", false, "show this help and exit [false]")
	fs.BoolVar(&c.Help, "h", false, "alias of --help")
	fs.BoolVar(&c.ShowExamples, "examples", false, "show example invocations and exit [false]")
}

// Validate applies shared CLI invariants.
func Validate(c *Common) error {
	c.Report = strings.ToLower(c.Report)
	if !report.Known(c.Report) {
		return validate.Usagef("invalid --report %q", c.Report)
	}
	return nil
}
