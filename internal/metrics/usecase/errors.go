package usecase

import "image-insights-srv/internal/metrics"

func invalidSampleErr(field string) error {
	return &metrics.FieldError{Field: field, Base: metrics.ErrInvalidSample}
}

func invalidSearchMetricsErr(field string) error {
	return &metrics.FieldError{Field: field, Base: metrics.ErrInvalidSearchMetrics}
}
