package validate

import (
	"context"
	"errors"
)

// Code is a process exit status.
type Code int

const (
	CodeSuccess         Code = 0
	CodeUsage           Code = 1
	CodeFileOpen        Code = 2
	CodeFormat          Code = 3
	CodeTooFewSequences Code = 4

	// CodeInterrupted is used when SIGINT/SIGTERM cancelled the scan.
	CodeInterrupted Code = 130
)

// String returns the status name used in logs and reports.
func (c Code) String() string {
	switch c {
	case CodeSuccess:
		return "ok"
	case CodeUsage:
		return "usage_error"
	case CodeFileOpen:
		return "file_open_error"
	case CodeFormat:
		return "format_error"
	case CodeTooFewSequences:
		return "too_few_sequences"
	case CodeInterrupted:
		return "interrupted"
	}
	return "unknown"
}

// ExitCode maps a scan error to its exit status. A nil error is success.
// Errors outside the taxonomy are treated as unreadable input.
func ExitCode(err error) Code {
	switch {
	case err == nil:
		return CodeSuccess
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return CodeInterrupted
	case errors.Is(err, ErrUsage):
		return CodeUsage
	case errors.Is(err, ErrFormat):
		return CodeFormat
	case errors.Is(err, ErrTooFewSequences):
		return CodeTooFewSequences
	default:
		return CodeFileOpen
	}
}
