package file

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ulikunitz/xz"
)

const XzExt = ".xz"

type xzFile struct {
	io.Reader
	f *os.File
}

func (x *xzFile) Close() error {
	return x.f.Close()
}

// Open opens the file at path for reading. Files with the .xz extension are
// decompressed on the fly.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	if filepath.Ext(path) != XzExt {
		return f, nil
	}

	r, err := xz.NewReader(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("xz decoding error %s: %w", path, err)
	}

	return &xzFile{Reader: r, f: f}, nil
}

// Create creates the file at path, compressing with xz if path has the .xz
// extension. Close must be called to flush the compressed stream.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	if filepath.Ext(path) != XzExt {
		return f, nil
	}

	w, err := xz.NewWriter(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("xz encoding error %s: %w", path, err)
	}

	return &xzWriter{w: w, f: f}, nil
}

type xzWriter struct {
	w *xz.Writer
	f *os.File
}

func (x *xzWriter) Write(p []byte) (int, error) {
	return x.w.Write(p)
}

func (x *xzWriter) Close() error {
	if err := x.w.Close(); err != nil {
		x.f.Close()
		return err
	}
	return x.f.Close()
}
