package cmdutil

import (
	"bufio"
	"fmt"
	"io"

	"bammval/internal/report"
	"bammval/internal/validate"
)

// Finish flushes buffered stdout and returns code. The exit status is the
// verdict on the input file only: a flush failure is reported on stderr
// (broken pipes silently) and never changes code.
func Finish(outw *bufio.Writer, stderr io.Writer, code validate.Code) int {
	if err := outw.Flush(); err != nil && !report.IsBrokenPipe(err) {
		_, _ = fmt.Fprintf(stderr, "error: writing report: %v\n", err)
	}
	return int(code)
}
