package app

import (
	"os"
	"path/filepath"

	"github.com/dshills/chip/internal/engine/buffer"
)

// Document is the file being viewed and its lines.
type Document struct {
	// Path is the file path as given on the command line (empty for
	// a scratch buffer).
	Path string

	// Name is the display name (base name or "Untitled").
	Name string

	Buffer *buffer.Buffer
}

// NewScratchDocument creates an empty document with no file.
func NewScratchDocument(opts ...buffer.Option) *Document {
	return &Document{
		Name:   "Untitled",
		Buffer: buffer.New(opts...),
	}
}

// LoadDocument reads the file at path one line at a time.
// Failures are reported as *IOError.
func LoadDocument(path string, opts ...buffer.Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	buf := buffer.New(opts...)
	if _, err := buf.ReadLines(f); err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	return &Document{
		Path:   path,
		Name:   filepath.Base(path),
		Buffer: buf,
	}, nil
}
