package validate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCodeMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, CodeSuccess},
		{"usage", Usagef("expected %d arguments", 2), CodeUsage},
		{"open", fmt.Errorf("%w: %v", ErrFileOpen, os.ErrNotExist), CodeFileOpen},
		{"format", Formatf("x.fa", 3, "whitespace in sequence"), CodeFormat},
		{"wrapped format", fmt.Errorf("scan: %w", Formatf("x", 1, "bad")), CodeFormat},
		{"too few", fmt.Errorf("%w: 3 < 5", ErrTooFewSequences), CodeTooFewSequences},
		{"canceled", context.Canceled, CodeInterrupted},
		{"unclassified", errors.New("boom"), CodeFileOpen},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}

func TestFormatErrorMessageAndAs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", Formatf("sites.txt", 4, "width %d, want %d", 7, 6))

	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, 4, fe.Line)
	assert.Equal(t, "width 7, want 6", fe.Reason)
	assert.Equal(t, "sites.txt:4: width 7, want 6", fe.Error())
	assert.ErrorIs(t, err, ErrFormat)
	assert.NotErrorIs(t, err, ErrUsage)

	noLine := &FormatError{Path: "a", Reason: "r"}
	assert.Equal(t, "a: r", noLine.Error())
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "ok", CodeSuccess.String())
	assert.Equal(t, "too_few_sequences", CodeTooFewSequences.String())
	assert.Equal(t, "unknown", Code(42).String())
}
