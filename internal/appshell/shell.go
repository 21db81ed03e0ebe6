package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"bammval/internal/validate"
)

// Main runs an app with a context cancelled on SIGINT/SIGTERM and exits
// with its code. An empty argv is passed through unchanged: both
// validators treat it as a usage error.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == int(validate.CodeSuccess) {
		code = int(validate.CodeInterrupted)
	}

	stop()
	os.Exit(code)
}
