package usecase

import (
	"context"

	"image-insights-srv/internal/metrics"
	"image-insights-srv/internal/model"
)

func (uc *implUseCase) ComputeSEOImpact(ctx context.Context, sc model.Scope, input metrics.SearchMetrics) (metrics.SEOImpact, error) {
	if err := uc.validateSearchMetrics(input); err != nil {
		uc.l.Warnf(ctx, "metrics.usecase.ComputeSEOImpact: validate: %v", err)
		return metrics.SEOImpact{}, err
	}

	score := (input.MetadataQuality*uc.cfg.WeightMetadataQuality +
		input.TechnicalOptimization*uc.cfg.WeightTechnicalOptimization +
		input.SchemaPresence*uc.cfg.WeightSchemaPresence +
		input.ContentRelevance*uc.cfg.WeightContentRelevance) / 100

	var currentCTR float64
	if input.Impressions > 0 {
		currentCTR = float64(input.Clicks) / float64(input.Impressions)
	}

	// Projected CTR scales the current rate by the composite score.
	deltaCTR := currentCTR * (score / 100) * uc.cfg.CTRUpliftFactor
	projectedCTR := currentCTR + deltaCTR

	var trafficIncrease float64
	if input.Clicks > 0 {
		trafficIncrease = deltaCTR * float64(input.Impressions) / float64(input.Clicks)
	}

	return metrics.SEOImpact{
		ImageID: input.ImageID,
		Score:   score,
		SubScores: metrics.SubScores{
			MetadataQuality:       input.MetadataQuality,
			TechnicalOptimization: input.TechnicalOptimization,
			SchemaPresence:        input.SchemaPresence,
			ContentRelevance:      input.ContentRelevance,
		},
		CurrentCTR:               currentCTR,
		ProjectedCTR:             projectedCTR,
		EstimatedTrafficIncrease: trafficIncrease,
	}, nil
}

func (uc *implUseCase) validateSearchMetrics(input metrics.SearchMetrics) error {
	switch {
	case input.Impressions < 0:
		return invalidSearchMetricsErr("impressions")
	case input.Clicks < 0:
		return invalidSearchMetricsErr("clicks")
	case input.Clicks > input.Impressions:
		return invalidSearchMetricsErr("clicks")
	case input.AvgRank < 0:
		return invalidSearchMetricsErr("avg_rank")
	}
	subScores := []struct {
		field string
		value float64
	}{
		{"metadata_quality", input.MetadataQuality},
		{"technical_optimization", input.TechnicalOptimization},
		{"schema_presence", input.SchemaPresence},
		{"content_relevance", input.ContentRelevance},
	}
	for _, s := range subScores {
		if s.value < 0 || s.value > 100 {
			return invalidSearchMetricsErr(s.field)
		}
	}
	return nil
}
