package kafka

// InteractionMessage is the wire shape storefront clients publish to
// storefront.interactions.
type InteractionMessage struct {
	SessionID       string            `json:"session_id"`
	EventType       string            `json:"event_type"`
	ImageID         string            `json:"image_id"`
	DeviceType      string            `json:"device_type,omitempty"`
	InteractionKind string            `json:"interaction_kind,omitempty"`
	Position        string            `json:"position,omitempty"`
	DurationMs      int64             `json:"duration_ms,omitempty"`
	LoadTimeMs      int64             `json:"load_time_ms,omitempty"`
	Details         map[string]string `json:"details,omitempty"`
}
