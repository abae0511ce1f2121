package structured

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// ErrUnknownKind - kind outside the closed document-kind set
	ErrUnknownKind = errors.New("structured: unknown document kind")

	// ErrMissingField - payload lacks a field required by the kind
	ErrMissingField = errors.New("structured: missing required field")
)

// FieldError names the missing payload field.
type FieldError struct {
	Kind  string
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("structured: missing required field %q for kind %q", e.Field, e.Kind)
}

func (e *FieldError) Unwrap() error {
	return ErrMissingField
}
