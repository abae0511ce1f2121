package compliance

import "errors"

// Domain errors
var (
	// ErrUnknownPlatform - platform key has no registered spec
	ErrUnknownPlatform = errors.New("compliance: unknown platform")

	// ErrMissingField - required descriptor field is absent
	ErrMissingField = errors.New("compliance: missing required field")

	// ErrInvalidDimensions - width or height is not positive
	ErrInvalidDimensions = errors.New("compliance: invalid dimensions")

	// ErrUnknownFormat - format outside the known codec set
	ErrUnknownFormat = errors.New("compliance: unknown format")
)
