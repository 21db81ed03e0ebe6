package bindingsiteapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"bammval/internal/bindingsite"
	"bammval/internal/bindingsitecli"
	"bammval/internal/clibase"
	"bammval/internal/cmdutil"
	"bammval/internal/logging"
	"bammval/internal/report"
	"bammval/internal/validate"
	"bammval/internal/version"
)

const Name = "validate-binding-site-file"

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext validates one motif initialization file and returns the exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := bindingsitecli.NewFlagSet(Name)
	fs.SetOutput(io.Discard)

	opts, err := bindingsitecli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrExamples):
			clibase.Examples(outw, Name, bindingsitecli.Examples)
			return cmdutil.Finish(outw, stderr, validate.CodeSuccess)
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return cmdutil.Finish(outw, stderr, validate.CodeSuccess)
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return cmdutil.Finish(outw, stderr, validate.CodeUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", Name, version.Version)
		return cmdutil.Finish(outw, stderr, validate.CodeSuccess)
	}

	logger := logging.New(stderr, logging.Options{Prefix: Name, Quiet: opts.Quiet, Verbose: opts.Verbose})
	if !opts.Format.Validated() {
		logger.Debug("format is accepted without validation", "format", opts.Format)
	}

	res, err := bindingsite.Check(parent, opts.Path, opts.Format, opts.MaxWidth)
	cmdutil.LogVerdict(logger, opts.Path, err, "format", opts.Format, "lines", res.Lines, "width", res.Width)

	rep := report.New(Name, opts.Path, err)
	rep.Format = string(opts.Format)
	rep.Checked = opts.Format.Validated()
	rep.Lines = res.Lines
	rep.Width = res.Width
	if werr := report.Write(opts.Report, outw, rep); werr != nil && !report.IsBrokenPipe(werr) {
		logger.Error("write report", "err", werr)
	}
	return cmdutil.Finish(outw, stderr, validate.ExitCode(err))
}
