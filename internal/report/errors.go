package report

import "errors"

// Domain errors
var (
	// ErrReportNotFound - no report with the given ID
	ErrReportNotFound = errors.New("report: report not found")

	// ErrReportNotReady - report has no completed artifact to download
	ErrReportNotReady = errors.New("report: report not ready")

	// ErrEventSourceFailed - event log could not be read
	ErrEventSourceFailed = errors.New("report: event source failed")

	// ErrPersistFailed - report record could not be stored or updated
	ErrPersistFailed = errors.New("report: persist failed")

	// ErrStorageFailed - artifact upload or presign failed
	ErrStorageFailed = errors.New("report: storage failed")
)
