// internal/fileio/open.go
package fileio

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinPath is the path placeholder for standard input.
const StdinPath = "-"

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

// Open returns a reader for path; "" and "-" mean stdin. Gzip files are
// detected by magic number (1F 8B) or a .gz suffix and decompressed
// transparently.
func Open(path string) (io.ReadCloser, error) {
	if path == "" || path == StdinPath {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// ReadInput slurps path (stdin for "-") into a string. A non-zero
// maxBytes caps the decompressed size; oversized input is an error
// rather than a silent truncation.
func ReadInput(path string, maxBytes int64) (string, error) {
	rc, err := Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = rc.Close() }()

	var r io.Reader = rc
	if maxBytes > 0 {
		r = io.LimitReader(rc, maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", displayName(path), err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return "", fmt.Errorf("%s: input exceeds %d byte limit", displayName(path), maxBytes)
	}
	return string(data), nil
}

func displayName(path string) string {
	if path == "" || path == StdinPath {
		return "stdin"
	}
	return path
}
