package metadata

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format opens documents of one schema and binds an Accessor to them.
type Format interface {
	// Name identifies the format in logs and errors.
	Name() string

	// Detect reports whether the file at path belongs to this format.
	Detect(path string) bool

	// Open parses the file at path.
	Open(path string) (Accessor, error)
}

// Registry selects a Format for a file. The first registered format that
// detects a path wins.
type Registry struct {
	formats []Format
}

// NewRegistry creates a registry holding formats in priority order.
func NewRegistry(formats ...Format) *Registry {
	r := &Registry{}
	for _, f := range formats {
		r.Register(f)
	}
	return r
}

// Register appends f to the registry.
func (r *Registry) Register(f Format) {
	r.formats = append(r.formats, f)
}

// Formats returns the registered format names in priority order.
func (r *Registry) Formats() []string {
	names := make([]string, len(r.formats))
	for i, f := range r.formats {
		names[i] = f.Name()
	}
	return names
}

// Lookup returns the format that handles path.
func (r *Registry) Lookup(path string) (Format, error) {
	for _, f := range r.formats {
		if f.Detect(path) {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %s (supported: %s)", ErrUnknownFormat, filepath.Base(path), strings.Join(r.Formats(), ", "))
}

// Open detects the format of path and parses it.
func (r *Registry) Open(path string) (Accessor, error) {
	f, err := r.Lookup(path)
	if err != nil {
		return nil, err
	}
	acc, err := f.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s document: %w", f.Name(), err)
	}
	return acc, nil
}
