package event

import "errors"

// Domain errors
var (
	// ErrUnknownEventType - eventType outside {view, download, interaction}
	ErrUnknownEventType = errors.New("event: unknown event type")

	// ErrMissingImageID - imageId is required for every event
	ErrMissingImageID = errors.New("event: missing image id")

	// ErrInvalidDuration - negative duration or load time
	ErrInvalidDuration = errors.New("event: invalid duration")

	// ErrUnknownInteraction - interaction kind outside the weight table
	ErrUnknownInteraction = errors.New("event: unknown interaction kind")

	// ErrPersistFailed - event log persistence failed
	ErrPersistFailed = errors.New("event: persistence failed")
)
