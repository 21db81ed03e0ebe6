package fasta

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"unicode"

	"bammval/internal/lineio"
	"bammval/internal/validate"
)

// HeaderMarker starts every header line.
const HeaderMarker = '>'

// Options tunes Scan. The zero value checks structure only.
type Options struct {
	// MinSequences fails a well-formed file holding fewer records. 0 disables.
	MinSequences int

	// UniqueHeaders rejects a header whose text repeats an earlier one.
	UniqueHeaders bool
}

// Result summarizes a scan.
type Result struct {
	Records  int // header lines seen
	Residues int // sequence characters across finished records
	Lines    int // lines read, blank ones included
}

type state uint8

const (
	stateStart state = iota
	stateInHeader
	stateInSequence
)

type lineKind uint8

const (
	lineHeader lineKind = iota + 1
	lineSequence
)

// record is the entry currently accumulating sequence lines.
type record struct {
	header string
	length int
}

type scanner struct {
	path string

	state state
	cur   *record
	kind  lineKind       // of the line being read
	hdr   []byte         // header text read so far
	seen  map[string]int // header → line of first occurrence
	res   Result
}

// Scan validates path as FASTA. Format violations are returned as
// *validate.FormatError; an unreadable input wraps validate.ErrFileOpen.
// The minimum record count is only checked after a clean scan.
func Scan(ctx context.Context, path string, opts Options) (Result, error) {
	s := &scanner{path: path}
	if opts.UniqueHeaders {
		s.seen = make(map[string]int)
	}
	if err := lineio.Scan(ctx, path, s.piece); err != nil {
		return s.res, err
	}
	s.finish()

	if opts.MinSequences > 0 && s.res.Records < opts.MinSequences {
		return s.res, fmt.Errorf("%w: %s has %d sequences, need at least %d",
			validate.ErrTooFewSequences, path, s.res.Records, opts.MinSequences)
	}
	return s.res, nil
}

func (s *scanner) piece(p lineio.Piece) error {
	s.res.Lines = p.Line
	data := p.Data
	if p.Off == 0 {
		// Only a blank line starts with an empty piece.
		if len(data) == 0 {
			return nil
		}
		if data[0] == HeaderMarker {
			s.kind = lineHeader
			s.hdr = s.hdr[:0]
			data = data[1:]
		} else {
			if s.state == stateStart {
				return validate.Formatf(s.path, p.Line, "sequence data before the first header")
			}
			s.kind = lineSequence
			s.state = stateInSequence
		}
	}

	switch s.kind {
	case lineHeader:
		s.hdr = append(s.hdr, data...)
		if p.Last {
			return s.header(p.Line, s.hdr)
		}
	case lineSequence:
		if i := bytes.IndexFunc(data, unicode.IsSpace); i >= 0 {
			return validate.Formatf(s.path, p.Line, "whitespace at column %d of sequence line in record %q",
				p.Off+i+1, s.cur.header)
		}
		s.cur.length += len(data)
	}
	return nil
}

func (s *scanner) header(n int, text []byte) error {
	s.res.Records++
	s.finish()

	h := string(text)
	if h == "" {
		h = strconv.Itoa(s.res.Records)
	}
	if s.seen != nil {
		if first, dup := s.seen[h]; dup {
			return validate.Formatf(s.path, n, "duplicate header %q (first on line %d)", h, first)
		}
		s.seen[h] = n
	}
	s.cur = &record{header: h}
	s.state = stateInHeader
	return nil
}

// finish closes the open record, if any.
func (s *scanner) finish() {
	if s.cur == nil {
		return
	}
	s.res.Residues += s.cur.length
	s.cur = nil
}
