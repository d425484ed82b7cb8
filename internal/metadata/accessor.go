package metadata

// Accessor resolves template placeholders against one parsed document.
// An Accessor owns its document tree and is used for a single file only.
type Accessor interface {
	// Value returns the sanitized value for p. Errors wrap one of the
	// sentinel errors of this package.
	Value(p Placeholder) (string, error)

	// Extension returns the document extension, including the leading
	// dot, that the new name must keep (e.g. ".fb2", ".fb2.zip").
	Extension() string
}
