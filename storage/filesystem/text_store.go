package filesystem

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/corefclean/clean"
	"github.com/revelaction/corefclean/file"
	"github.com/revelaction/corefclean/storage"
)

const maxLineSize = 16 * 1024 * 1024

// TextStore writes cleaned documents to a text file, one document per line.
type TextStore struct {
	path string
	w    io.WriteCloser
	buf  *bufio.Writer
}

var _ storage.DocWriter = (*TextStore)(nil)

// NewTextStore creates (or truncates) the file at path. A path ending in .xz
// is written xz compressed.
func NewTextStore(path string) (*TextStore, error) {
	w, err := file.Create(path)
	if err != nil {
		return nil, err
	}

	return &TextStore{
		path: path,
		w:    w,
		buf:  bufio.NewWriter(w),
	}, nil
}

func (s *TextStore) Write(res clean.Result) error {
	if _, err := s.buf.WriteString(res.Text + "\n"); err != nil {
		return fmt.Errorf("failed to write doc %d to %s: %w", res.Index, s.path, err)
	}
	return nil
}

func (s *TextStore) Close() error {
	if err := s.buf.Flush(); err != nil {
		s.w.Close()
		return err
	}
	return s.w.Close()
}

// ReadLines reads the noisy documents of the file at path, one document per
// line. Lines are trimmed; empty lines are kept as empty documents.
func ReadLines(path string) ([]string, error) {
	f, err := file.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	docs, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return docs, nil
}

func readLines(r io.Reader) ([]string, error) {
	var docs []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		docs = append(docs, strings.TrimSpace(scanner.Text()))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}
