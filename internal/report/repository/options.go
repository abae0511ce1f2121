package repository

import (
	"time"

	"image-insights-srv/internal/model"
)

type CreateReportOptions struct {
	Report model.Report
}

type UpdateReportOptions struct {
	ID           string
	Status       string
	ErrorMessage string

	FileURL       string
	FileSizeBytes int64
	FileFormat    string

	TotalEvents      int
	GenerationTimeMs int64

	CompletedAt *time.Time
}
