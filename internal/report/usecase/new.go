package usecase

import (
	"time"

	"image-insights-srv/internal/event"
	"image-insights-srv/internal/report"
	"image-insights-srv/internal/report/repository"
	"image-insights-srv/pkg/log"
	"image-insights-srv/pkg/minio"
	"image-insights-srv/pkg/paginator"
	"image-insights-srv/pkg/util"
)

type Config struct {
	// Bucket holds generated CSV artifacts.
	Bucket string

	// PresignExpiry bounds download URL validity.
	PresignExpiry time.Duration

	// SummaryTTL bounds how long aggregated summaries stay cached.
	SummaryTTL time.Duration

	// PageLimit is the page size used when draining the event log.
	PageLimit int64
}

func DefaultConfig() Config {
	return Config{
		Bucket:        "image-insights-reports",
		PresignExpiry: 15 * time.Minute,
		SummaryTTL:    time.Hour,
		PageLimit:     paginator.MaxLimit,
	}
}

type implUseCase struct {
	l       log.Logger
	repo    repository.Repository
	cache   repository.Cache
	storage minio.MinIO
	eventUC event.UseCase
	clock   util.Clock
	cfg     Config
}

func New(
	l log.Logger,
	repo repository.Repository,
	cache repository.Cache,
	storage minio.MinIO,
	eventUC event.UseCase,
	clock util.Clock,
	cfg Config,
) report.UseCase {
	return &implUseCase{
		l:       l,
		repo:    repo,
		cache:   cache,
		storage: storage,
		eventUC: eventUC,
		clock:   clock,
		cfg:     cfg,
	}
}
