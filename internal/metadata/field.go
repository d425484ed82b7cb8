// Package metadata defines the fields a rename template can reference and
// the Accessor capability that resolves them for one parsed document.
package metadata

import "strings"

// Field is a named metadata attribute that can be extracted from a document.
type Field string

const (
	FieldAuthors   Field = "authors"
	FieldTitle     Field = "title"
	FieldDate      Field = "date"
	FieldSequence  Field = "sequence"
	FieldSeqName   Field = "seq_name"
	FieldSeqNumber Field = "seq_number"
	FieldGenre     Field = "genre"
	FieldOldName   Field = "oldname"
	FieldYear      Field = "year"
	FieldLangSrc   Field = "lang_src"
	FieldLang      Field = "lang"
	FieldPublisher Field = "publisher"
	FieldISBN      Field = "isbn"
	FieldBookName  Field = "bookname"
	FieldCity      Field = "city"
	FieldVersion   Field = "version"
)

// Fields lists every known field in resolution priority order.
var Fields = []Field{
	FieldAuthors,
	FieldTitle,
	FieldDate,
	FieldSequence,
	FieldSeqName,
	FieldSeqNumber,
	FieldGenre,
	FieldOldName,
	FieldYear,
	FieldLangSrc,
	FieldLang,
	FieldPublisher,
	FieldISBN,
	FieldBookName,
	FieldCity,
	FieldVersion,
}

func (f Field) String() string {
	return string(f)
}

// Known reports whether f is one of Fields.
func (f Field) Known() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

// MatchPrefix returns the longest known field that s starts with.
// "lang_src" wins over "lang" for "lang_src#x".
func MatchPrefix(s string) (Field, bool) {
	var best Field
	for _, f := range Fields {
		if strings.HasPrefix(s, string(f)) && len(f) > len(best) {
			best = f
		}
	}
	return best, best != ""
}
