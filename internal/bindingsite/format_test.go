package bindingsite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bammval/internal/validate"
)

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	for _, bad := range []string{"", "pwm", "bindingsitefile", "MEME"} {
		_, err := ParseFormat(bad)
		assert.ErrorIs(t, err, validate.ErrUsage, bad)
	}
}

func TestCheckStubsNeverRead(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	for _, f := range []Format{FormatPWM, FormatBaMM} {
		_, err := Check(context.Background(), missing, f, Unbounded)
		assert.NoError(t, err, string(f))
		assert.False(t, f.Validated())
	}
}

func TestCheckBindingSiteScans(t *testing.T) {
	assert.True(t, FormatBindingSite.Validated())

	_, err := Check(context.Background(), writeSites(t, "AAA\nCC\n"), FormatBindingSite, Unbounded)
	assert.ErrorIs(t, err, validate.ErrFormat)

	_, err = Check(context.Background(), filepath.Join(t.TempDir(), "missing"), FormatBindingSite, Unbounded)
	assert.ErrorIs(t, err, validate.ErrFileOpen)
}

func TestCheckUnknownFormat(t *testing.T) {
	_, err := Check(context.Background(), "x", Format("MEME"), Unbounded)
	assert.ErrorIs(t, err, validate.ErrUsage)
}
