package bindingsitecli

import (
	"flag"
	"fmt"
	"io"

	"bammval/internal/bindingsite"
	"bammval/internal/clibase"
	"bammval/internal/cliutil"
	"bammval/internal/validate"
)

type Options struct {
	clibase.Common

	Path     string
	Format   bindingsite.Format
	MaxWidth int
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, _ func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] <path> <BindingSiteFile|PWM|BaMM>\n", name)

		_, _ = fmt.Fprintln(out, "\nArguments:")
		_, _ = fmt.Fprintln(out, "  path                        Motif initialization file ('-' for STDIN, .gz accepted)")
		_, _ = fmt.Fprintln(out, "  format                      BindingSiteFile: one equal-width site per line")
		_, _ = fmt.Fprintln(out, "                              PWM, BaMM: accepted, not validated yet")

		_, _ = fmt.Fprintln(out, "\nBinding sites:")
		_, _ = fmt.Fprintln(out, "      --max-width int         Maximum site width, e.g. shortest input sequence [unbounded]")
	})
	return fs
}

func Examples(w io.Writer) {
	_, _ = fmt.Fprintln(w, "  # check a binding-site file")
	_, _ = fmt.Fprintln(w, "  validate-binding-site-file sites.txt BindingSiteFile")
	_, _ = fmt.Fprintln(w, "\n  # sites must fit into the shortest positive sequence (here 50 bp)")
	_, _ = fmt.Fprintln(w, "  validate-binding-site-file --max-width 50 sites.txt BindingSiteFile")
	_, _ = fmt.Fprintln(w, "\n  # machine-readable verdict")
	_, _ = fmt.Fprintln(w, "  validate-binding-site-file --report json sites.txt BindingSiteFile")
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	clibase.Register(fs, &o.Common)
	fs.IntVar(&o.MaxWidth, "max-width", bindingsite.Unbounded, "maximum binding site width [unbounded]")

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

	if len(posArgs) != 2 {
		return o, validate.Usagef("expected 2 arguments <path> <format>, got %d", len(posArgs))
	}
	if err := clibase.Validate(&o.Common); err != nil {
		return o, err
	}
	if o.MaxWidth < 1 {
		return o, validate.Usagef("--max-width must be ≥ 1")
	}
	f, err := bindingsite.ParseFormat(posArgs[1])
	if err != nil {
		return o, err
	}
	o.Path = posArgs[0]
	o.Format = f
	return o, nil
}
