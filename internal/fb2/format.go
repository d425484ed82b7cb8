// Package fb2 reads FictionBook 2 documents, plain or zipped, and resolves
// template fields from their description section.
package fb2

import (
	"path/filepath"
	"strings"

	"github.com/yuanying/fb2rename/internal/metadata"
)

// Extensions handled by this package.
const (
	Extension    = ".fb2"
	ZipExtension = ".fb2.zip"
)

// Format is the metadata.Format for FictionBook 2 files.
type Format struct{}

// Name implements metadata.Format.
func (Format) Name() string {
	return "fb2"
}

// Detect implements metadata.Format.
func (Format) Detect(path string) bool {
	return documentExtension(path) != ""
}

// Open implements metadata.Format.
func (Format) Open(path string) (metadata.Accessor, error) {
	return Open(path)
}

// Open reads and parses the book at path.
func Open(path string) (*Book, error) {
	data, err := readBook(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if doc.First("description") == nil {
		return nil, ErrMissingMetadata
	}

	ext := documentExtension(path)
	if ext == "" {
		ext = filepath.Ext(path)
	}
	return NewBook(doc, path, ext), nil
}

// documentExtension returns the FB2 extension of path as spelled in the
// file name, or an empty string.
func documentExtension(path string) string {
	lower := strings.ToLower(path)
	for _, ext := range []string{ZipExtension, Extension} {
		if strings.HasSuffix(lower, ext) {
			return path[len(path)-len(ext):]
		}
	}
	return ""
}

// Register adds the FB2 format to r.
func Register(r *metadata.Registry) {
	r.Register(Format{})
}
