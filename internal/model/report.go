package model

import (
	"encoding/json"
	"time"
)

// Report represents a persisted engagement report record.
type Report struct {
	ID      string
	ImageID string
	UserID  string

	// Report Configuration
	Title      string
	ParamsHash string
	Filters    json.RawMessage

	// Status
	Status       string // PROCESSING | COMPLETED | FAILED
	ErrorMessage string

	// Output
	FileURL       string
	FileSizeBytes int64
	FileFormat    string

	// Metrics
	TotalEvents      int
	GenerationTimeMs int64

	// Timestamps
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
