// Package pattern parses rename templates and resolves their placeholders.
//
// A placeholder is written %field% or %field<subformat>% and ends at the
// first '%' that follows the opening one. Text between '%' characters that
// does not start with a known field name is copied to the output.
package pattern

import (
	"fmt"
	"strings"

	"github.com/yuanying/fb2rename/internal/metadata"
)

// Template is a parsed rename template.
type Template struct {
	raw   string
	parts []part
}

type part struct {
	text        string
	placeholder *metadata.Placeholder
}

// Parse splits s into literal text and placeholders. Parsing never fails.
func Parse(s string) *Template {
	t := &Template{raw: s}

	litStart := 0
	i := 0
	for i < len(s) {
		if s[i] != '%' {
			i++
			continue
		}
		end := strings.IndexByte(s[i+1:], '%')
		if end < 0 {
			break
		}
		raw := s[i+1 : i+1+end]
		field, ok := metadata.MatchPrefix(raw)
		if !ok {
			// The closing '%' may open the next placeholder.
			i++
			continue
		}

		if litStart < i {
			t.parts = append(t.parts, part{text: s[litStart:i]})
		}
		t.parts = append(t.parts, part{placeholder: &metadata.Placeholder{
			Raw:       raw,
			Field:     field,
			Subformat: raw[len(field):],
			Offset:    i,
		}})
		i += end + 2
		litStart = i
	}
	if litStart < len(s) {
		t.parts = append(t.parts, part{text: s[litStart:]})
	}
	return t
}

// String returns the template as written.
func (t *Template) String() string {
	return t.raw
}

// Placeholders returns the placeholders in template order.
func (t *Template) Placeholders() []metadata.Placeholder {
	var out []metadata.Placeholder
	for _, p := range t.parts {
		if p.placeholder != nil {
			out = append(out, *p.placeholder)
		}
	}
	return out
}

// Resolve substitutes every placeholder with its value from acc.
//
// Fields are looked up in metadata.Fields order, and for one field in
// template order, so the first reported error is deterministic. Substituted
// values are never scanned again. The result is not sanitized.
func (t *Template) Resolve(acc metadata.Accessor) (string, error) {
	values := make([]string, len(t.parts))
	for _, field := range metadata.Fields {
		for i, p := range t.parts {
			if p.placeholder == nil || p.placeholder.Field != field {
				continue
			}
			v, err := acc.Value(*p.placeholder)
			if err != nil {
				return "", fmt.Errorf("placeholder %s: %w", p.placeholder.Token(), err)
			}
			values[i] = v
		}
	}

	var b strings.Builder
	for i, p := range t.parts {
		if p.placeholder != nil {
			b.WriteString(values[i])
		} else {
			b.WriteString(p.text)
		}
	}
	return b.String(), nil
}

// Resolve parses template and resolves it against acc.
func Resolve(template string, acc metadata.Accessor) (string, error) {
	return Parse(template).Resolve(acc)
}
