package model

import "time"

// Interaction event types.
const (
	EventTypeView        = "view"
	EventTypeDownload    = "download"
	EventTypeInteraction = "interaction"
)

// Device types reported by storefront clients.
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
)

// AnalyticsEvent is a single recorded interaction. Append-only: once written
// it is never mutated or merged.
type AnalyticsEvent struct {
	ID              string            `json:"id"`
	SessionID       string            `json:"session_id"`
	Timestamp       time.Time         `json:"timestamp"`
	EventType       string            `json:"event_type"`
	ImageID         string            `json:"image_id"`
	DeviceType      string            `json:"device_type"`
	DurationMs      int64             `json:"duration_ms"`
	EngagementScore float64           `json:"engagement_score"`
	LoadTimeMs      int64             `json:"load_time_ms"`
	Details         map[string]string `json:"details,omitempty"`
}
