package repository

import (
	"context"
	"time"

	"image-insights-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	CreateReport(ctx context.Context, opt CreateReportOptions) (model.Report, error)
	UpdateReport(ctx context.Context, opt UpdateReportOptions) (model.Report, error)
	GetReport(ctx context.Context, id string) (model.Report, error)
}

//go:generate mockery --name Cache
type Cache interface {
	SetSummary(ctx context.Context, reportID string, data []byte, ttl time.Duration) error
	GetSummary(ctx context.Context, reportID string) ([]byte, error)
}
