package fb2

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuanying/fb2rename/internal/metadata"
	"github.com/yuanying/fb2rename/internal/sanitize"
)

// Book resolves placeholders against one FB2 document.
type Book struct {
	doc  *Document
	path string
	ext  string
}

// NewBook binds doc to the file it was read from.
// ext is the document extension kept in the new name.
func NewBook(doc *Document, path, ext string) *Book {
	return &Book{doc: doc, path: path, ext: ext}
}

// Extension implements metadata.Accessor.
func (b *Book) Extension() string {
	return b.ext
}

// Value implements metadata.Accessor.
func (b *Book) Value(p metadata.Placeholder) (string, error) {
	if !p.Field.Known() {
		return "", &metadata.FieldError{Field: p.Field, Err: metadata.ErrUnknownField}
	}
	v, err := b.value(p)
	if err != nil {
		return "", err
	}
	return sanitize.Field(v), nil
}

func (b *Book) value(p metadata.Placeholder) (string, error) {
	switch p.Field {
	case metadata.FieldAuthors:
		return b.authors(p.Subformat)
	case metadata.FieldSequence:
		seq, err := b.Sequence()
		if err != nil {
			return "", err
		}
		return seq.String(), nil
	case metadata.FieldSeqName:
		seq, err := b.Sequence()
		if err != nil {
			return "", &metadata.FieldError{Field: p.Field, Err: err}
		}
		return seq.Name, nil
	case metadata.FieldSeqNumber:
		seq, err := b.Sequence()
		if err != nil {
			return "", &metadata.FieldError{Field: p.Field, Err: err}
		}
		return seq.Number, nil
	case metadata.FieldDate:
		d, err := b.Date()
		if err != nil {
			return "", err
		}
		return d.Format(dateLayout), nil
	case metadata.FieldYear:
		d, err := b.Date()
		if err != nil {
			return "", &metadata.FieldError{Field: p.Field, Err: err}
		}
		return fmt.Sprintf("%04d", d.Year()), nil
	case metadata.FieldOldName:
		return b.OldName(), nil
	}
	return b.scalar(p.Field)
}

// scalar returns the text of the first element found for f.
func (b *Book) scalar(f metadata.Field) (string, error) {
	paths, ok := fieldPaths[f]
	if !ok {
		return "", &metadata.FieldError{Field: f, Err: metadata.ErrUnknownField}
	}
	sel, _ := b.doc.FirstOf(paths)
	if sel == nil {
		return "", &metadata.FieldError{Field: f, Path: paths[len(paths)-1], Err: metadata.ErrFieldNotFound}
	}
	return sel.Text(), nil
}

// Authors returns the names of every author listed in title-info.
func (b *Book) Authors() ([]metadata.PersonName, error) {
	path := fieldPaths[metadata.FieldAuthors][0]
	sel := b.doc.All(path)
	if sel.Length() == 0 {
		return nil, &metadata.FieldError{Field: metadata.FieldAuthors, Path: path, Err: metadata.ErrNoAuthor}
	}

	names := make([]metadata.PersonName, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		names = append(names, metadata.PersonName{
			First:  b.doc.Child(s, firstNameTag),
			Middle: b.doc.Child(s, middleNameTag),
			Last:   b.doc.Child(s, lastNameTag),
		})
	})
	return names, nil
}

func (b *Book) authors(format string) (string, error) {
	names, err := b.Authors()
	if err != nil {
		return "", err
	}
	s, err := metadata.FormatPersonNames(names, format)
	if err != nil {
		return "", &metadata.FieldError{Field: metadata.FieldAuthors, Err: err}
	}
	return s, nil
}

// Sequence returns the series of the book. Only a missing sequence element
// is an error; missing attributes are empty.
func (b *Book) Sequence() (metadata.Sequence, error) {
	paths := fieldPaths[metadata.FieldSequence]
	sel, _ := b.doc.FirstOf(paths)
	if sel == nil {
		return metadata.Sequence{}, &metadata.FieldError{
			Field: metadata.FieldSequence,
			Path:  paths[0],
			Err:   metadata.ErrAttributeNotFound,
		}
	}
	name, _ := sel.Attr(seqNameAttr)
	number, _ := sel.Attr(seqNumberAttr)
	return metadata.Sequence{Name: name, Number: number}, nil
}

// Date returns the parsed value attribute of the book date.
func (b *Book) Date() (time.Time, error) {
	paths := fieldPaths[metadata.FieldDate]
	sel, path := b.doc.FirstOf(paths)
	if sel == nil {
		return time.Time{}, &metadata.FieldError{Field: metadata.FieldDate, Path: paths[0], Err: metadata.ErrInvalidDate}
	}
	value, ok := sel.Attr(dateValueAttr)
	if !ok {
		return time.Time{}, &metadata.FieldError{
			Field: metadata.FieldDate,
			Path:  path,
			Err:   fmt.Errorf("%w: no %s attribute", metadata.ErrInvalidDate, dateValueAttr),
		}
	}
	d, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, &metadata.FieldError{
			Field: metadata.FieldDate,
			Path:  path,
			Err:   fmt.Errorf("%w: %q", metadata.ErrInvalidDate, value),
		}
	}
	return d, nil
}

// OldName returns the base name of the source file without its extension.
func (b *Book) OldName() string {
	base := filepath.Base(b.path)
	if b.ext != "" && len(base) > len(b.ext) && strings.EqualFold(base[len(base)-len(b.ext):], b.ext) {
		return base[:len(base)-len(b.ext)]
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
