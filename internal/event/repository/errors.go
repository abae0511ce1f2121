package repository

import "errors"

var (
	// ErrEventNotFound - no event matched the query
	ErrEventNotFound = errors.New("event repository: event not found")
)
