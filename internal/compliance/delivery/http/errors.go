package http

import (
	"errors"

	"image-insights-srv/internal/compliance"
	pkgErrors "image-insights-srv/pkg/errors"
)

var (
	errUnknownPlatform = pkgErrors.NewHTTPError(
		404, "Unknown platform",
	)
	errMissingField = pkgErrors.NewHTTPError(
		400, "Missing required field",
	)
	errInvalidDimensions = pkgErrors.NewHTTPError(
		400, "Width and height must be positive",
	)
	errUnknownFormat = pkgErrors.NewHTTPError(
		400, "Unknown image format",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, compliance.ErrUnknownPlatform):
		return errUnknownPlatform
	case errors.Is(err, compliance.ErrMissingField):
		return errMissingField
	case errors.Is(err, compliance.ErrInvalidDimensions):
		return errInvalidDimensions
	case errors.Is(err, compliance.ErrUnknownFormat):
		return errUnknownFormat
	default:
		panic(err)
	}
}
