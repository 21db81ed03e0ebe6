// internal/clibase/usage.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"bammval/internal/validate"
	"bammval/internal/version"
)

// ErrExamples is returned by ParseArgs for --examples. The app prints
// Examples and exits 0.
var ErrExamples = errors.New("examples requested")

// exitCodes is the status contract shared by both validators, in the order
// it is documented.
var exitCodes = []struct {
	code validate.Code
	text string
}{
	{validate.CodeSuccess, "input is valid"},
	{validate.CodeUsage, "usage error"},
	{validate.CodeFileOpen, "file cannot be opened or read"},
	{validate.CodeFormat, "file format error"},
	{validate.CodeTooFewSequences, "too few sequences (FASTA only)"},
	{validate.CodeInterrupted, "interrupted"},
}

func header(out io.Writer, name string) {
	fmt.Fprintf(out, "%s – motif pipeline input validator\n\n", name)
}

func printExitCodes(out io.Writer) {
	fmt.Fprintln(out, "\nExit codes:")
	for _, c := range exitCodes {
		fmt.Fprintf(out, "  %3d  %s\n", int(c.code), c.text)
	}
}

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (synopsis, arguments, tool flags).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		header(out, name)
		fmt.Fprintln(out, "License: GPL-3.0")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "      --report string         Verdict report on stdout: none | text | json | yaml [%s]\n", def("report"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress diagnostics on stderr [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose               Log scan details on stderr [%s]\n", def("verbose"))
		fmt.Fprintln(out, "      --examples              Show example invocations and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")

		printExitCodes(out)
	}
}

// Examples prints the tool's example invocations under the usage header,
// followed by the exit codes a pipeline should branch on.
func Examples(out io.Writer, name string, body func(io.Writer)) {
	if out == nil {
		return
	}
	header(out, name)
	fmt.Fprintln(out, "Examples:")
	if body != nil {
		body(out)
	}
	printExitCodes(out)
	fmt.Fprintln(out, "\nThe verdict is the exit status; add --report text to also print it.")
}
