package lineio

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"unicode/utf8"

	"bammval/internal/validate"
)

// Piece is a fragment of one input line. Every line arrives as one or more
// pieces in order; the last one has Last set and may be empty. A line's
// length is Off+len(Data) of its last piece. Pieces never split a UTF-8
// encoded rune, and the line terminator (\n or \r\n) is never included.
type Piece struct {
	Line int // 1-based
	Off  int // byte offset of Data within the line
	Data []byte
	Last bool
}

// Len is the line length seen so far, the full length on the last piece.
func (p Piece) Len() int { return p.Off + len(p.Data) }

// Scan opens path and calls fn with every piece of every line. Lines have
// no length limit: long lines are handed over in buffer-sized pieces. Data
// is only valid until fn returns. A non-nil error from fn stops the scan
// and is returned unchanged. ctx is checked between pieces.
func Scan(ctx context.Context, path string, fn func(Piece) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	var eol bool
	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 64*1024), bufio.MaxScanTokenSize)
	sc.Split(func(data []byte, atEOF bool) (int, []byte, error) {
		return splitPieces(data, atEOF, &eol)
	})

	p := Piece{Line: 1}
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		p.Data = sc.Bytes()
		p.Last = eol
		if err := fn(p); err != nil {
			return err
		}
		if eol {
			p.Line++
			p.Off = 0
		} else {
			p.Off += len(p.Data)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", validate.ErrFileOpen, path, err)
	}
	return nil
}

// splitPieces is a bufio.SplitFunc. It returns a whole line when a newline
// is buffered and otherwise everything buffered except a trailing '\r' or
// an incomplete rune, which wait for the next read. eol reports whether
// the returned token ends its line.
func splitPieces(data []byte, atEOF bool, eol *bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		*eol = true
		return i + 1, bytes.TrimSuffix(data[:i], []byte{'\r'}), nil
	}
	if atEOF {
		*eol = true
		return len(data), bytes.TrimSuffix(data, []byte{'\r'}), nil
	}
	cut := len(data)
	if data[cut-1] == '\r' {
		cut--
	} else {
		i := cut - 1
		for i > 0 && i > cut-utf8.UTFMax && !utf8.RuneStart(data[i]) {
			i--
		}
		if !utf8.FullRune(data[i:cut]) {
			cut = i
		}
	}
	if cut == 0 {
		return 0, nil, nil
	}
	*eol = false
	return cut, data[:cut], nil
}
