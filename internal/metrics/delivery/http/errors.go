package http

import (
	"errors"
	"fmt"

	"image-insights-srv/internal/metrics"
	pkgErrors "image-insights-srv/pkg/errors"
)

var (
	errInvalidSample = pkgErrors.NewHTTPError(
		400, "Invalid performance sample",
	)
	errInvalidSearchMetrics = pkgErrors.NewHTTPError(
		400, "Invalid search metrics",
	)
)

func (h *handler) mapError(err error) error {
	var fieldErr *metrics.FieldError

	switch {
	case errors.Is(err, metrics.ErrInvalidSample):
		if errors.As(err, &fieldErr) {
			return pkgErrors.NewHTTPError(400, fmt.Sprintf("Invalid performance sample: %s", fieldErr.Field))
		}
		return errInvalidSample
	case errors.Is(err, metrics.ErrInvalidSearchMetrics):
		if errors.As(err, &fieldErr) {
			return pkgErrors.NewHTTPError(400, fmt.Sprintf("Invalid search metrics: %s", fieldErr.Field))
		}
		return errInvalidSearchMetrics
	default:
		panic(err)
	}
}
