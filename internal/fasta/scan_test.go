package fasta

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bammval/internal/lineio"
	"bammval/internal/validate"
)

const threeRecords = `>seq1 first
ACGTACGT
ACGT
>seq2

TTGACA
>seq3
`

func writeFA(t *testing.T, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "in.fa")
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

func scan(t *testing.T, data string, opts Options) (Result, error) {
	t.Helper()
	return Scan(context.Background(), writeFA(t, data), opts)
}

func TestScanWellFormed(t *testing.T) {
	res, err := scan(t, threeRecords, Options{})
	require.NoError(t, err)
	assert.Equal(t, Result{Records: 3, Residues: 18, Lines: 7}, res)
}

func TestScanEmptyFile(t *testing.T) {
	res, err := scan(t, "", Options{})
	require.NoError(t, err)
	assert.Zero(t, res.Records)
}

func TestScanBlankLinesOnly(t *testing.T) {
	_, err := scan(t, "\n\n\n", Options{})
	assert.NoError(t, err)
}

func TestScanSequenceBeforeHeader(t *testing.T) {
	_, err := scan(t, "\nACGT\n>seq1\nACGT\n", Options{})
	require.ErrorIs(t, err, validate.ErrFormat)

	var fe *validate.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 2, fe.Line)
}

func TestScanWhitespaceInSequence(t *testing.T) {
	for name, line := range map[string]string{
		"space":    "ACG TACGT",
		"tab":      "ACG\tT",
		"trailing": "ACGT ",
		"leading":  " ACGT",
		"nbsp":     "ACG\u00a0T",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := scan(t, ">s\nAAAA\n"+line+"\n", Options{})
			require.ErrorIs(t, err, validate.ErrFormat)

			var fe *validate.FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, 3, fe.Line)
		})
	}
}

func TestScanHeaderMayContainSpaces(t *testing.T) {
	_, err := scan(t, ">chr1 some description\tmore\nACGT\n", Options{})
	assert.NoError(t, err)
}

func TestScanBareMarkerHeaderCounted(t *testing.T) {
	res, err := scan(t, ">\nACGT\n>\nTTTT\n", Options{MinSequences: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Records)
}

func TestScanBareMarkerPlaceholderNonEmpty(t *testing.T) {
	s := &scanner{path: "x"}
	require.NoError(t, s.header(1, nil))
	assert.NotEmpty(t, s.cur.header)
	assert.Equal(t, stateInHeader, s.state)
}

// line feeds one whole line to s as a single piece.
func line(s *scanner, n int, text string) error {
	return s.piece(lineio.Piece{Line: n, Data: []byte(text), Last: true})
}

func TestScanStateTransitions(t *testing.T) {
	s := &scanner{path: "x"}
	assert.Equal(t, stateStart, s.state)

	require.NoError(t, line(s, 1, ">a"))
	assert.Equal(t, stateInHeader, s.state)

	require.NoError(t, line(s, 2, ""))
	assert.Equal(t, stateInHeader, s.state, "blank lines leave the state alone")

	require.NoError(t, line(s, 3, "AC"))
	require.NoError(t, line(s, 4, "GT"))
	assert.Equal(t, stateInSequence, s.state)
	assert.Equal(t, 4, s.cur.length)

	require.NoError(t, line(s, 5, ">b"))
	assert.Equal(t, stateInHeader, s.state)
	assert.Equal(t, "b", s.cur.header)
	assert.Equal(t, 4, s.res.Residues)
}

func TestScanLineSplitAcrossPieces(t *testing.T) {
	s := &scanner{path: "x", seen: map[string]int{}}
	require.NoError(t, s.piece(lineio.Piece{Line: 1, Data: []byte(">chr"), Last: false}))
	assert.Equal(t, stateStart, s.state, "header is pending until its last piece")
	require.NoError(t, s.piece(lineio.Piece{Line: 1, Off: 4, Data: []byte("1 desc"), Last: true}))
	assert.Equal(t, "chr1 desc", s.cur.header)

	require.NoError(t, s.piece(lineio.Piece{Line: 2, Data: []byte("ACGT")}))
	require.NoError(t, s.piece(lineio.Piece{Line: 2, Off: 4, Data: []byte("ACG")}))
	require.NoError(t, s.piece(lineio.Piece{Line: 2, Off: 7, Last: true}))
	assert.Equal(t, 7, s.cur.length)

	err := s.piece(lineio.Piece{Line: 3, Data: []byte("AC")})
	require.NoError(t, err)
	err = s.piece(lineio.Piece{Line: 3, Off: 2, Data: []byte("G T"), Last: true})
	var fe *validate.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 3, fe.Line)
	assert.Contains(t, fe.Reason, "column 4")
}

func TestScanVeryLongSequenceLine(t *testing.T) {
	const n = 65 << 20
	res, err := scan(t, ">chr1\n"+strings.Repeat("A", n)+"\n", Options{MinSequences: 1})
	require.NoError(t, err)
	assert.Equal(t, Result{Records: 1, Residues: n, Lines: 2}, res)
}

func TestScanWhitespaceDeepInLongLine(t *testing.T) {
	const n = 200 << 10
	_, err := scan(t, ">chr1\n"+strings.Repeat("A", n)+" A\n", Options{})
	var fe *validate.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 2, fe.Line)
	assert.Contains(t, fe.Reason, "column 204801")
}

func TestScanVeryLongHeader(t *testing.T) {
	h := strings.Repeat("h", 100<<10)
	_, err := scan(t, ">"+h+"\nACGT\n>"+h+"\nACGT\n", Options{UniqueHeaders: true})
	var fe *validate.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 3, fe.Line, "long headers are compared whole")
}

func TestScanMinSequences(t *testing.T) {
	cases := []struct {
		min  int
		want error
	}{
		{0, nil},
		{2, nil},
		{3, nil},
		{4, validate.ErrTooFewSequences},
		{5, validate.ErrTooFewSequences},
	}
	for _, tc := range cases {
		res, err := scan(t, threeRecords, Options{MinSequences: tc.min})
		if tc.want == nil {
			assert.NoError(t, err, "min=%d", tc.min)
		} else {
			assert.ErrorIs(t, err, tc.want, "min=%d", tc.min)
		}
		assert.Equal(t, 3, res.Records)
	}
}

func TestScanFormatErrorWinsOverMinSequences(t *testing.T) {
	_, err := scan(t, ">a\nAC GT\n", Options{MinSequences: 10})
	assert.ErrorIs(t, err, validate.ErrFormat)
	assert.NotErrorIs(t, err, validate.ErrTooFewSequences)
}

func TestScanUniqueHeaders(t *testing.T) {
	data := ">a\nACGT\n>b\nACGT\n>a\nACGT\n"

	_, err := scan(t, data, Options{})
	require.NoError(t, err, "duplicates are allowed by default")

	_, err = scan(t, data, Options{UniqueHeaders: true})
	require.ErrorIs(t, err, validate.ErrFormat)
	var fe *validate.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 5, fe.Line)

	_, err = scan(t, ">\nA\n>\nC\n", Options{UniqueHeaders: true})
	assert.NoError(t, err, "placeholder headers are distinct")
}

func TestScanCRLF(t *testing.T) {
	res, err := scan(t, ">a\r\nACGT\r\nACGT\r\n>b\r\nTT\r\n", Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Records)
	assert.Equal(t, 10, res.Residues)
}

func TestScanGzip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "in.fa.gz")
	fh, err := os.Create(fn)
	require.NoError(t, err)
	gw := gzip.NewWriter(fh)
	_, err = gw.Write([]byte(threeRecords))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())

	res, err := Scan(context.Background(), fn, Options{MinSequences: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Records)
}

func TestScanMissingFile(t *testing.T) {
	_, err := Scan(context.Background(), filepath.Join(t.TempDir(), "nope.fa"), Options{MinSequences: 1})
	assert.ErrorIs(t, err, validate.ErrFileOpen)
	assert.NotErrorIs(t, err, validate.ErrTooFewSequences)
}
