// Package bindingsite validates binding-site files: one motif sequence per
// line, every line the same width.
package bindingsite

import (
	"context"
	"math"

	"bammval/internal/lineio"
	"bammval/internal/validate"
)

// Unbounded disables the width bound.
const Unbounded = math.MaxInt

// Result summarizes a clean scan.
type Result struct {
	Lines int // non-empty lines seen
	Width int // common width; 0 for an empty file
}

// Scan checks that every non-empty line of path has the width of the first
// one and that this width does not exceed maxWidth. Empty lines are
// skipped, so an empty file passes. The first violation is returned as a
// *validate.FormatError.
func Scan(ctx context.Context, path string, maxWidth int) (Result, error) {
	var res Result
	err := lineio.Scan(ctx, path, func(p lineio.Piece) error {
		w, n := p.Len(), p.Line
		if !p.Last || w == 0 {
			return nil
		}
		if res.Lines == 0 {
			if w > maxWidth {
				return validate.Formatf(path, n, "binding site width %d exceeds maximum %d", w, maxWidth)
			}
			res.Width = w
		} else if w != res.Width {
			return validate.Formatf(path, n, "binding site width %d differs from %d on the first line", w, res.Width)
		}
		res.Lines++
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}
