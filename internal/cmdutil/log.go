package cmdutil

import (
	"errors"

	"github.com/charmbracelet/log"

	"bammval/internal/validate"
)

// LogVerdict logs the outcome of one scan: Debug with the summary key/values
// on success, Error with the failing line on a format violation, Error with
// the cause otherwise.
func LogVerdict(logger *log.Logger, path string, err error, summary ...any) {
	code := validate.ExitCode(err)
	var fe *validate.FormatError
	switch {
	case err == nil:
		logger.Debug("valid", append([]any{"path", path}, summary...)...)
	case code == validate.CodeInterrupted:
		logger.Warn("interrupted", "path", path)
	case errors.As(err, &fe):
		logger.Error(validate.ErrFormat.Error(), "path", fe.Path, "line", fe.Line, "reason", fe.Reason)
	default:
		logger.Error(code.String(), "path", path, "err", err)
	}
}
