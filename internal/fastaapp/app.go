package fastaapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"bammval/internal/clibase"
	"bammval/internal/cmdutil"
	"bammval/internal/fasta"
	"bammval/internal/fastacli"
	"bammval/internal/logging"
	"bammval/internal/report"
	"bammval/internal/validate"
	"bammval/internal/version"
)

const Name = "validate-fasta-file"

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext validates one FASTA file and returns the exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := fastacli.NewFlagSet(Name)
	fs.SetOutput(io.Discard)

	opts, err := fastacli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrExamples):
			clibase.Examples(outw, Name, fastacli.Examples)
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

	res, err := fasta.Scan(parent, opts.Path, fasta.Options{
		MinSequences:  opts.MinSequences,
		UniqueHeaders: opts.UniqueHeaders,
	})
	cmdutil.LogVerdict(logger, opts.Path, err, "records", res.Records, "residues", res.Residues, "lines", res.Lines)

	rep := report.New(Name, opts.Path, err)
	rep.Format = "FASTA"
	rep.Lines = res.Lines
	rep.Records = res.Records
	if werr := report.Write(opts.Report, outw, rep); werr != nil && !report.IsBrokenPipe(werr) {
		logger.Error("write report", "err", werr)
	}
	return cmdutil.Finish(outw, stderr, validate.ExitCode(err))
}
