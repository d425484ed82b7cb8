// Package sanitize cleans metadata values and file names.
//
// Replacements are applied in a fixed order so that a later step never
// reintroduces characters removed by an earlier one.
package sanitize

import "strings"

var (
	numeroReplacer   = strings.NewReplacer("№", "n")
	quoteReplacer    = strings.NewReplacer(`"`, "'", "»", "'", "«", "'")
	ellipsisReplacer = strings.NewReplacer("…", "_")
	dashReplacer     = strings.NewReplacer("–", "-", "—", "-")

	filenameReplacer = strings.NewReplacer("?", ".", ":", ".")
	fieldReplacer    = strings.NewReplacer(`\`, ".", "/", ".")
)

// Common trims s, replaces typographic characters with ASCII stand-ins
// and collapses every whitespace run to a single space.
func Common(s string) string {
	s = strings.TrimSpace(s)
	s = numeroReplacer.Replace(s)
	s = quoteReplacer.Replace(s)
	s = ellipsisReplacer.Replace(s)
	s = dashReplacer.Replace(s)
	return collapseSpaces(s)
}

// Filename prepares s for use as a file name: Common, then '?' and ':'
// become '.'.
func Filename(s string) string {
	return filenameReplacer.Replace(Common(s))
}

// Field prepares a metadata value for substitution into a template:
// Common, then path separators become '.'.
func Field(s string) string {
	return fieldReplacer.Replace(Common(s))
}

// collapseSpaces also drops leading and trailing whitespace.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
