package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented is returned by BaseCase for operations a concrete variant must provide.
	ErrNotImplemented = errors.New("not implemented")
	// ErrUnknownCaseType is returned when a case's type tag has no registered variant.
	ErrUnknownCaseType = errors.New("unknown case type")
	// ErrDuplicateCaseType is returned when two variants register the same type tag.
	ErrDuplicateCaseType = errors.New("duplicate case type")
)

// SerializationError reports a case whose JSON type tag is missing or does not
// match the variant decoding it.
type SerializationError struct {
	Expected string
	Actual   string
	Missing  bool
}

func (e *SerializationError) Error() string {
	if e.Missing {
		return fmt.Sprintf("JSON is missing type %s", e.Expected)
	}
	return fmt.Sprintf("JSON type %s does not match TestCase type %s", e.Actual, e.Expected)
}
