// Package lineio opens validator inputs and walks them line by line.
package lineio

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"bammval/internal/validate"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path. "-" is stdin; gzip input is detected by
// its magic number (1F 8B) or a .gz suffix. Errors wrap validate.ErrFileOpen.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", validate.ErrFileOpen, err)
	}
	var sig [2]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, fmt.Errorf("%w: %s: %v", validate.ErrFileOpen, path, err)
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, fmt.Errorf("%w: %s: %v", validate.ErrFileOpen, path, err)
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}
