package fastacli

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"bammval/internal/clibase"
	"bammval/internal/cliutil"
	"bammval/internal/validate"
)

type Options struct {
	clibase.Common

	Path          string
	MinSequences  int
	UniqueHeaders bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] <path> [min-sequence-count]\n", name)

		_, _ = fmt.Fprintln(out, "\nArguments:")
		_, _ = fmt.Fprintln(out, "  path                        FASTA file ('-' for STDIN, .gz accepted)")
		_, _ = fmt.Fprintln(out, "  min-sequence-count          Fail with exit 4 below this many records [0 = no minimum]")

		_, _ = fmt.Fprintln(out, "\nFASTA:")
		_, _ = fmt.Fprintf(out, "      --unique-headers        Reject repeated header lines [%s]\n", def("unique-headers"))
	})
	return fs
}

func Examples(w io.Writer) {
	_, _ = fmt.Fprintln(w, "  # structural check only")
	_, _ = fmt.Fprintln(w, "  validate-fasta-file positives.fa")
	_, _ = fmt.Fprintln(w, "\n  # require at least 10 sequences")
	_, _ = fmt.Fprintln(w, "  validate-fasta-file positives.fa 10")
	_, _ = fmt.Fprintln(w, "\n  # from a pipe, with a YAML verdict")
	_, _ = fmt.Fprintln(w, "  zcat positives.fa.gz | validate-fasta-file --report yaml -")
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	clibase.Register(fs, &o.Common)
	fs.BoolVar(&o.UniqueHeaders, "unique-headers", false, "reject repeated header lines [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		if err == flag.ErrHelp {
			return o, err
		}
		return o, fmt.Errorf("%w: %v", validate.ErrUsage, err)
	}
	if o.ShowExamples {
		return o, clibase.ErrExamples
	}
	if o.Help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}

	if len(posArgs) < 1 || len(posArgs) > 2 {
		return o, validate.Usagef("expected <path> [min-sequence-count], got %d arguments", len(posArgs))
	}
	if err := clibase.Validate(&o.Common); err != nil {
		return o, err
	}
	o.Path = posArgs[0]
	if len(posArgs) == 2 {
		n, err := strconv.Atoi(posArgs[1])
		if err != nil || n < 0 {
			return o, validate.Usagef("min-sequence-count must be a non-negative integer, got %q", posArgs[1])
		}
		o.MinSequences = n
	}
	return o, nil
}
