package repository

import (
	"context"

	"image-insights-srv/internal/model"
)

//go:generate mockery --name EventRepository
type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.AnalyticsEvent, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.AnalyticsEvent, error)
	CountEvents(ctx context.Context, opt ListEventsOptions) (int64, error)
	DeleteEventsBySession(ctx context.Context, sessionID string) (int64, error)
}
