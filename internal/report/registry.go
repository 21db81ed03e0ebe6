package report

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

// None disables reporting.
const None = "none"

// Writers maps a format name to its renderer.
var Writers = map[string]func(io.Writer, Report) error{}

// Register installs fn for format (last wins).
func Register(format string, fn func(io.Writer, Report) error) { Writers[format] = fn }

// Known reports whether format is None or has a registered writer.
func Known(format string) bool {
	if format == None {
		return true
	}
	_, ok := Writers[format]
	return ok
}

// Write renders r in format. None writes nothing.
func Write(format string, w io.Writer, r Report) error {
	if format == None {
		return nil
	}
	fn, ok := Writers[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, r)
}

// IsBrokenPipe reports whether err means the stdout reader went away, as
// with `validate-fasta-file --report text in.fa | head -c1`. Writers treat
// it as a non-error.
func IsBrokenPipe(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, syscall.EPIPE), errors.Is(err, io.ErrClosedPipe):
		return true
	}
	return false
}
