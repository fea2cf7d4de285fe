// Common package contains helpers shared by several tools.
// Exporting these functions from the Common package reduces redundant code.
package common

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

// OpenMaybeGzip opens a file for reading and transparently decompresses it
// when the gzip magic bytes are present. The caller owns the returned
// ReadCloser; closing it closes the underlying file as well.
func OpenMaybeGzip(file string) (io.ReadCloser, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	buf := make([]byte, 2)
	if _, err := f.Read(buf); err == nil && buf[0] == 0x1F && buf[1] == 0x8B {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			f.Close()
			return nil, err
		}
		gr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to open gzip reader: %w", err)
		}
		return &gzipReadCloser{gz: gr, f: f}, nil
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// gzipReadCloser closes the gzip stream and the file beneath it.
type gzipReadCloser struct {
	gz *gzip.Reader
	f  *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) { return g.gz.Read(p) }

func (g *gzipReadCloser) Close() error {
	if err := g.gz.Close(); err != nil {
		g.f.Close()
		return err
	}
	return g.f.Close()
}
