package fb2

import "github.com/yuanying/fb2rename/internal/metadata"

// Lookup paths relative to the FictionBook root, per field, in priority
// order: title-info, then document-info, then publish-info.
var fieldPaths = map[metadata.Field][]string{
	metadata.FieldAuthors:   {"description/title-info/author"},
	metadata.FieldTitle:     {"description/title-info/book-title"},
	metadata.FieldDate:      {"description/title-info/date", "description/document-info/date"},
	metadata.FieldYear:      {"description/title-info/date", "description/document-info/date"},
	metadata.FieldSequence:  {"description/title-info/sequence", "description/publish-info/sequence"},
	metadata.FieldSeqName:   {"description/title-info/sequence", "description/publish-info/sequence"},
	metadata.FieldSeqNumber: {"description/title-info/sequence", "description/publish-info/sequence"},
	metadata.FieldGenre:     {"description/title-info/genre"},
	metadata.FieldLang:      {"description/title-info/lang"},
	metadata.FieldLangSrc:   {"description/title-info/src-lang"},
	metadata.FieldPublisher: {"description/document-info/publisher", "description/publish-info/publisher"},
	metadata.FieldISBN:      {"description/publish-info/isbn"},
	metadata.FieldBookName:  {"description/publish-info/book-name", "description/publish-info/bookname"},
	metadata.FieldCity:      {"description/publish-info/city"},
	metadata.FieldVersion:   {"description/document-info/version"},
}

// Child element names of an author entry.
const (
	firstNameTag  = "first-name"
	middleNameTag = "middle-name"
	lastNameTag   = "last-name"
)

// Sequence and date attributes.
const (
	seqNameAttr   = "name"
	seqNumberAttr = "number"
	dateValueAttr = "value"
)

// dateLayout is the layout of the date value attribute.
const dateLayout = "2006-01-02"
