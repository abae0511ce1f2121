package http

import (
	"errors"

	"image-insights-srv/internal/structured"
	pkgErrors "image-insights-srv/pkg/errors"
)

var (
	errUnknownKind = pkgErrors.NewHTTPError(
		400, "Unknown document kind",
	)
	errMissingField = pkgErrors.NewHTTPError(
		400, "Missing required payload field",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, structured.ErrUnknownKind):
		return errUnknownKind
	case errors.Is(err, structured.ErrMissingField):
		var fieldErr *structured.FieldError
		if errors.As(err, &fieldErr) {
			return pkgErrors.NewHTTPError(400, "Missing required payload field: "+fieldErr.Field)
		}
		return errMissingField
	default:
		panic(err)
	}
}
