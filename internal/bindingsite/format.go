package bindingsite

import (
	"context"

	"bammval/internal/validate"
)

// Format is a motif-initialization file format tag.
type Format string

const (
	FormatBindingSite Format = "BindingSiteFile"
	FormatPWM         Format = "PWM"
	FormatBaMM        Format = "BaMM"
)

// Formats lists the accepted tags in usage order.
var Formats = []Format{FormatBindingSite, FormatPWM, FormatBaMM}

// ParseFormat accepts one of Formats (case-sensitive).
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", validate.Usagef("unknown format %q (want BindingSiteFile, PWM or BaMM)", s)
}

// Validated reports whether Check actually reads files of this format.
func (f Format) Validated() bool { return f == FormatBindingSite }

// Check validates path as format f. PWM and BaMM are accepted without
// reading the file; their checks are not implemented yet.
func Check(ctx context.Context, path string, f Format, maxWidth int) (Result, error) {
	switch f {
	case FormatBindingSite:
		return Scan(ctx, path, maxWidth)
	case FormatPWM, FormatBaMM:
		return Result{}, nil
	}
	return Result{}, validate.Usagef("unknown format %q", string(f))
}
