package http

import (
	"errors"

	"image-insights-srv/internal/event"
	pkgErrors "image-insights-srv/pkg/errors"
)

var (
	errUnknownEventType = pkgErrors.NewHTTPError(
		400, "Unknown event type",
	)
	errMissingImageID = pkgErrors.NewHTTPError(
		400, "Missing image id",
	)
	errInvalidDuration = pkgErrors.NewHTTPError(
		400, "Duration and load time must not be negative",
	)
	errUnknownInteraction = pkgErrors.NewHTTPError(
		400, "Unknown interaction kind",
	)
	errPersistFailed = pkgErrors.NewHTTPError(
		500, "Failed to persist event log",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrUnknownEventType):
		return errUnknownEventType
	case errors.Is(err, event.ErrMissingImageID):
		return errMissingImageID
	case errors.Is(err, event.ErrInvalidDuration):
		return errInvalidDuration
	case errors.Is(err, event.ErrUnknownInteraction):
		return errUnknownInteraction
	case errors.Is(err, event.ErrPersistFailed):
		return errPersistFailed
	default:
		panic(err)
	}
}
