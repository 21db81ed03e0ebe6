package validate

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure class.
var (
	// ErrUsage is returned for wrong arity, bad flags or an unknown format tag.
	ErrUsage = errors.New("usage error")

	// ErrFileOpen is returned when the input cannot be opened or read.
	ErrFileOpen = errors.New("cannot read input")

	// ErrFormat is returned when the content violates the expected line grammar.
	ErrFormat = errors.New("invalid file format")

	// ErrTooFewSequences is returned when a well-formed FASTA file holds
	// fewer records than requested.
	ErrTooFewSequences = errors.New("too few sequences")
)

// FormatError describes the first line that broke the grammar.
type FormatError struct {
	Path   string
	Line   int // 1-based; 0 when not tied to a line
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// Is makes errors.Is(err, ErrFormat) hold for every *FormatError.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// Formatf builds a *FormatError.
func Formatf(path string, line int, format string, a ...any) *FormatError {
	return &FormatError{Path: path, Line: line, Reason: fmt.Sprintf(format, a...)}
}

// Usagef wraps ErrUsage with a message meant for the user.
func Usagef(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, a...))
}
