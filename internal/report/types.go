package report

import (
	"time"

	"image-insights-srv/internal/model"
)

// Report lifecycle states.
const (
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"
)

// FileFormatCSV is the only export format currently produced.
const FileFormatCSV = "csv"

// Filters narrows the event set a report or export covers. Nil time
// bounds mean unbounded.
type Filters struct {
	ImageID   string
	EventType string
	From      *time.Time
	To        *time.Time
}

type GenerateInput struct {
	Title   string
	Filters Filters
}

type GenerateOutput struct {
	Report  model.Report
	Summary Summary
}

// Summary aggregates recorded events. Engagement scores are averaged as
// stored, never recomputed.
type Summary struct {
	TotalEvents     int
	Views           int
	Downloads       int
	Interactions    int
	UniqueImages    int
	AvgEngagement   float64
	AvgDurationMs   float64
	AvgLoadTimeMs   float64
	DeviceBreakdown map[string]int
}

type GetInput struct {
	ID string
}

type GetOutput struct {
	Report model.Report

	// Summary is filled from the cache when still available.
	Summary *Summary
}

type DownloadInput struct {
	ID string
}

type DownloadOutput struct {
	URL       string
	ExpiresAt time.Time
}

type ExportInput struct {
	Filters Filters
}

type ExportOutput struct {
	Filename    string
	ContentType string
	Data        []byte
	Rows        int
}
