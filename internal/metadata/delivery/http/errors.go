package http

import (
	"errors"

	"image-insights-srv/internal/metadata"
	pkgErrors "image-insights-srv/pkg/errors"
)

var (
	errMissingField = pkgErrors.NewHTTPError(
		400, "Missing required field",
	)
	errInvalidDimensions = pkgErrors.NewHTTPError(
		400, "Width and height must be positive",
	)
	errUnknownFormat = pkgErrors.NewHTTPError(
		400, "Unknown image format",
	)
	errUnknownLicense = pkgErrors.NewHTTPError(
		400, "Unknown license type",
	)
	errProductNotFound = pkgErrors.NewHTTPError(
		404, "Product not found",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, metadata.ErrMissingField):
		var fieldErr *metadata.FieldError
		if errors.As(err, &fieldErr) {
			return pkgErrors.NewHTTPError(400, "Missing required field: "+fieldErr.Field)
		}
		return errMissingField
	case errors.Is(err, metadata.ErrInvalidDimensions):
		return errInvalidDimensions
	case errors.Is(err, metadata.ErrUnknownFormat):
		return errUnknownFormat
	case errors.Is(err, metadata.ErrUnknownLicense):
		return errUnknownLicense
	case errors.Is(err, metadata.ErrProductNotFound):
		return errProductNotFound
	default:
		panic(err)
	}
}
