package event

import (
	"context"

	"image-insights-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Record(ctx context.Context, sc model.Scope, input RecordInput) (model.AnalyticsEvent, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Snapshot(ctx context.Context, sc model.Scope) []model.AnalyticsEvent
	Flush(ctx context.Context, sc model.Scope) (int, error)
}
