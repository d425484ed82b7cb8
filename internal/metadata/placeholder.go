package metadata

// Placeholder is one %field<subformat>% token found in a template.
type Placeholder struct {
	Raw       string // text between the delimiting '%' characters
	Field     Field
	Subformat string // Raw with the field name removed
	Offset    int    // byte offset of the opening '%' in the template
}

// Token returns the placeholder as written in the template.
func (p Placeholder) Token() string {
	return "%" + p.Raw + "%"
}
