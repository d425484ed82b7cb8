package fb2

import (
	"errors"
	"testing"
)

func TestParse_Sample(t *testing.T) {
	doc, err := Parse([]byte(sampleFB2))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if doc.namespace != fbNamespace {
		t.Errorf("namespace = %q, want %q", doc.namespace, fbNamespace)
	}

	title := doc.First("description/title-info/book-title")
	if title == nil {
		t.Fatal("book-title not found")
	}
	if got := title.Text(); got != "Around the World   in Eighty Days" {
		t.Errorf("book-title = %q", got)
	}

	if n := doc.All("description/title-info/author").Length(); n != 2 {
		t.Errorf("authors = %d, want 2", n)
	}

	// body and binary are not part of the tree
	if doc.First("body") != nil {
		t.Error("body should not be decoded")
	}
	if doc.First("binary") != nil {
		t.Error("binary should not be decoded")
	}
	if doc.First("stylesheet") != nil {
		t.Error("stylesheet should not be decoded")
	}
}

func TestParse_FirstOf(t *testing.T) {
	doc, err := Parse([]byte(sampleFB2))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	sel, path := doc.FirstOf([]string{"description/title-info/publisher", "description/document-info/publisher"})
	if sel == nil {
		t.Fatal("FirstOf() found nothing")
	}
	if path != "description/document-info/publisher" {
		t.Errorf("path = %q", path)
	}
	if sel.Text() != "Doc Publisher" {
		t.Errorf("text = %q", sel.Text())
	}

	if sel, _ := doc.FirstOf([]string{"description/nothing"}); sel != nil {
		t.Error("FirstOf() should return nil for missing paths")
	}
}

func TestParse_IgnoresForeignNamespace(t *testing.T) {
	src := `<FictionBook xmlns="http://www.gribuser.ru/xml/fictionbook/2.0" xmlns:x="urn:other">
  <description>
    <title-info>
      <x:book-title>Wrong</x:book-title>
      <book-title>Right</book-title>
    </title-info>
  </description>
</FictionBook>`
	doc, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	sel := doc.All("description/title-info/book-title")
	if sel.Length() != 1 {
		t.Fatalf("book-title count = %d, want 1", sel.Length())
	}
	if sel.Text() != "Right" {
		t.Errorf("book-title = %q, want %q", sel.Text(), "Right")
	}
}

func TestParse_Windows1251(t *testing.T) {
	head := `<?xml version="1.0" encoding="windows-1251"?>
<FictionBook xmlns="http://www.gribuser.ru/xml/fictionbook/2.0"><description><title-info><book-title>`
	tail := `</book-title></title-info></description></FictionBook>`
	// "Толстой" in windows-1251
	title := []byte{0xD2, 0xEE, 0xEB, 0xF1, 0xF2, 0xEE, 0xE9}

	data := append([]byte(head), title...)
	data = append(data, tail...)

	doc, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	sel := doc.First("description/title-info/book-title")
	if sel == nil {
		t.Fatal("book-title not found")
	}
	if sel.Text() != "Толстой" {
		t.Errorf("book-title = %q, want %q", sel.Text(), "Толстой")
	}
}

func TestParse_NotFictionBook(t *testing.T) {
	_, err := Parse([]byte(`<html><body/></html>`))
	if !errors.Is(err, ErrNotFictionBook) {
		t.Fatalf("Parse() error = %v, want ErrNotFictionBook", err)
	}

	_, err = Parse([]byte(``))
	if !errors.Is(err, ErrNotFictionBook) {
		t.Fatalf("Parse(empty) error = %v, want ErrNotFictionBook", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`<FictionBook><description><title-info><book-title>x</book-title>`))
	if err == nil {
		t.Fatal("Parse() error = nil, want error")
	}
}

func TestDocument_Child(t *testing.T) {
	doc, err := Parse([]byte(sampleFB2))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	author := doc.First("description/title-info/author")
	if got := doc.Child(author, "first-name"); got != "Jules" {
		t.Errorf("first-name = %q, want Jules", got)
	}
	if got := doc.Child(author, "middle-name"); got != "" {
		t.Errorf("middle-name = %q, want empty", got)
	}
}
