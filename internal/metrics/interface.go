package metrics

import (
	"context"

	"image-insights-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	ComputePerformance(ctx context.Context, sc model.Scope, input PerformanceSample) (PerformanceMetrics, error)
	ComputeSEOImpact(ctx context.Context, sc model.Scope, input SearchMetrics) (SEOImpact, error)
}
