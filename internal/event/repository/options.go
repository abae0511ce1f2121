package repository

import (
	"time"

	"image-insights-srv/internal/model"
)

type CreateEventOptions struct {
	Event model.AnalyticsEvent
}

type ListEventsOptions struct {
	SessionID string
	ImageID   string
	EventType string
	From      *time.Time
	To        *time.Time
	Limit     int64
	Offset    int64
}
