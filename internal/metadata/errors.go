package metadata

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// ErrMissingField - a required descriptor or product field is absent
	ErrMissingField = errors.New("metadata: missing required field")

	// ErrInvalidDimensions - width or height is not positive
	ErrInvalidDimensions = errors.New("metadata: invalid dimensions")

	// ErrUnknownFormat - format outside the known codec set
	ErrUnknownFormat = errors.New("metadata: unknown format")

	// ErrUnknownLicense - licenseType outside the closed enum
	ErrUnknownLicense = errors.New("metadata: unknown license type")

	// ErrProductNotFound - catalog has no such product
	ErrProductNotFound = errors.New("metadata: product not found")
)

// FieldError names the offending field so callers can report it verbatim.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("metadata: missing required field: %s", e.Field)
}

func (e *FieldError) Unwrap() error {
	return ErrMissingField
}
