package metrics

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// ErrInvalidSample - out-of-range measurement; rejected, never clamped
	ErrInvalidSample = errors.New("metrics: invalid performance sample")

	// ErrInvalidSearchMetrics - out-of-range search metrics
	ErrInvalidSearchMetrics = errors.New("metrics: invalid search metrics")
)

// FieldError names the out-of-range field so callers can report it verbatim.
type FieldError struct {
	Field string
	Base  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s", e.Base, e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Base
}
