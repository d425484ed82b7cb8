package metadata

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultNameFormat renders "Last, First Middle".
const DefaultNameFormat = "#L, #F #M"

// AuthorSeparator joins the rendered names of several authors.
const AuthorSeparator = "; "

// PersonName holds the name parts of one author. Any part may be empty,
// but not all of them.
type PersonName struct {
	First  string
	Middle string
	Last   string
}

// IsEmpty reports whether no name part is set.
func (p PersonName) IsEmpty() bool {
	return strings.TrimSpace(p.First) == "" &&
		strings.TrimSpace(p.Middle) == "" &&
		strings.TrimSpace(p.Last) == ""
}

// FormatPersonName renders p with format. The tokens #F, #M and #L expand
// to the first, middle and last name; #f, #m and #l expand to their first
// character, or to a space when the part is absent. Any other text is
// copied as is. An empty format selects DefaultNameFormat. Whitespace runs
// in the result are collapsed.
func FormatPersonName(p PersonName, format string) (string, error) {
	if p.IsEmpty() {
		return "", fmt.Errorf("%w: author has no first, middle or last name", ErrNoAuthor)
	}
	if format == "" {
		format = DefaultNameFormat
	}

	first := strings.TrimSpace(p.First)
	middle := strings.TrimSpace(p.Middle)
	last := strings.TrimSpace(p.Last)

	var b strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] != '#' || i+1 == len(format) {
			b.WriteByte(format[i])
			continue
		}
		switch format[i+1] {
		case 'F':
			b.WriteString(first)
		case 'M':
			b.WriteString(middle)
		case 'L':
			b.WriteString(last)
		case 'f':
			b.WriteString(initial(first))
		case 'm':
			b.WriteString(initial(middle))
		case 'l':
			b.WriteString(initial(last))
		default:
			b.WriteByte('#')
			continue
		}
		i++
	}
	return strings.Join(strings.Fields(b.String()), " "), nil
}

// initial returns the first character of s, or a space for an empty s.
func initial(s string) string {
	if s == "" {
		return " "
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}

// FormatPersonNames renders every name with format and joins them with
// AuthorSeparator.
func FormatPersonNames(names []PersonName, format string) (string, error) {
	if len(names) == 0 {
		return "", ErrNoAuthor
	}
	rendered := make([]string, 0, len(names))
	for _, n := range names {
		s, err := FormatPersonName(n, format)
		if err != nil {
			return "", err
		}
		rendered = append(rendered, s)
	}
	return strings.Join(rendered, AuthorSeparator), nil
}

// Sequence is the series a book belongs to. Absent attributes are empty.
type Sequence struct {
	Name   string
	Number string
}

// String joins name and number with '-', keeping empty parts.
func (s Sequence) String() string {
	return s.Name + "-" + s.Number
}
