package metadata

import (
	"errors"
	"fmt"
)

var (
	ErrFieldNotFound     = errors.New("field not found")
	ErrNoAuthor          = errors.New("no author")
	ErrAttributeNotFound = errors.New("attribute not found")
	ErrInvalidDate       = errors.New("invalid date")
	ErrUnknownField      = errors.New("unknown field")
	ErrUnknownFormat     = errors.New("unknown document format")
)

// FieldError records which field failed to resolve.
// Err is one of the sentinel errors above, possibly wrapped.
type FieldError struct {
	Field Field
	Path  string // lookup path tried last, if any
	Err   error
}

func (e *FieldError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s (%s): %v", e.Field, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
