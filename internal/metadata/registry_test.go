package metadata

import (
	"errors"
	"strings"
	"testing"
)

type stubAccessor struct{ ext string }

func (s stubAccessor) Value(p Placeholder) (string, error) { return string(p.Field), nil }
func (s stubAccessor) Extension() string                   { return s.ext }

type stubFormat struct {
	name   string
	suffix string
	err    error
}

func (f stubFormat) Name() string { return f.name }

func (f stubFormat) Detect(path string) bool { return strings.HasSuffix(path, f.suffix) }

func (f stubFormat) Open(path string) (Accessor, error) {
	if f.err != nil {
		return nil, f.err
	}
	return stubAccessor{ext: f.suffix}, nil
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry(
		stubFormat{name: "zipped", suffix: ".fb2.zip"},
		stubFormat{name: "plain", suffix: ".fb2"},
	)

	f, err := r.Lookup("/books/a.fb2.zip")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if f.Name() != "zipped" {
		t.Errorf("Lookup().Name() = %q, want %q", f.Name(), "zipped")
	}

	_, err = r.Lookup("/books/a.txt")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Lookup(txt) error = %v, want ErrUnknownFormat", err)
	}
	if err != nil && !strings.Contains(err.Error(), "supported: zipped, plain") {
		t.Errorf("Lookup(txt) error = %q, want supported formats listed", err)
	}

	if got := strings.Join(r.Formats(), ","); got != "zipped,plain" {
		t.Errorf("Formats() = %q", got)
	}
}

func TestRegistry_Open(t *testing.T) {
	boom := errors.New("boom")
	r := NewRegistry(stubFormat{name: "plain", suffix: ".fb2", err: boom})

	if _, err := r.Open("a.fb2"); !errors.Is(err, boom) {
		t.Fatalf("Open() error = %v, want wrapped boom", err)
	}

	r = NewRegistry(stubFormat{name: "plain", suffix: ".fb2"})
	acc, err := r.Open("a.fb2")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if acc.Extension() != ".fb2" {
		t.Errorf("Extension() = %q, want .fb2", acc.Extension())
	}
}
