package http

import (
	"errors"

	"image-insights-srv/internal/report"
	pkgErrors "image-insights-srv/pkg/errors"
)

var (
	errReportNotFound = pkgErrors.NewHTTPError(
		404, "Report not found",
	)
	errReportNotReady = pkgErrors.NewHTTPError(
		409, "Report has no completed artifact",
	)
	errEventSourceFailed = pkgErrors.NewHTTPError(
		500, "Event log unavailable",
	)
	errPersistFailed = pkgErrors.NewHTTPError(
		500, "Report could not be stored",
	)
	errStorageFailed = pkgErrors.NewHTTPError(
		500, "Report artifact storage failed",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrReportNotFound):
		return errReportNotFound
	case errors.Is(err, report.ErrReportNotReady):
		return errReportNotReady
	case errors.Is(err, report.ErrEventSourceFailed):
		return errEventSourceFailed
	case errors.Is(err, report.ErrPersistFailed):
		return errPersistFailed
	case errors.Is(err, report.ErrStorageFailed):
		return errStorageFailed
	default:
		panic(err)
	}
}
