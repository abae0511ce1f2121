package consumer

import (
	"image-insights-srv/internal/event"
	kafkaDelivery "image-insights-srv/internal/event/delivery/kafka"
)

// toRecordInput maps the Kafka message DTO to the usecase input.
func toRecordInput(m kafkaDelivery.InteractionMessage) event.RecordInput {
	return event.RecordInput{
		EventType:       m.EventType,
		ImageID:         m.ImageID,
		DeviceType:      m.DeviceType,
		InteractionKind: m.InteractionKind,
		Position:        m.Position,
		DurationMs:      m.DurationMs,
		LoadTimeMs:      m.LoadTimeMs,
		Details:         m.Details,
	}
}
