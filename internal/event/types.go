package event

import (
	"time"

	"image-insights-srv/internal/model"
	"image-insights-srv/pkg/paginator"
)

// Interaction kinds and their engagement weights.
const (
	InteractionDownload = "download"
	InteractionZoom     = "zoom"
	InteractionShare    = "share"
	InteractionClick    = "click"
	InteractionHover    = "hover"
)

// Viewport positions reported by storefront clients.
const (
	PositionAboveFold = "above-fold"
	PositionBelowFold = "below-fold"
)

type RecordInput struct {
	EventType       string
	ImageID         string
	DeviceType      string
	InteractionKind string
	Position        string
	DurationMs      int64
	LoadTimeMs      int64
	Details         map[string]string
}

type ListInput struct {
	ImageID   string
	EventType string
	From      *time.Time
	To        *time.Time
	Paginate  paginator.PaginateQuery
}

type ListOutput struct {
	Events    []model.AnalyticsEvent
	Paginator paginator.Paginator
}
