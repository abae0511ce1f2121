package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	kafkaDelivery "image-insights-srv/internal/event/delivery/kafka"
	"image-insights-srv/internal/model"
	"image-insights-srv/pkg/scope"
)

// handleInteractionMessage normalizes the message into a scope and usecase
// input; business rules stay in the usecase.
func (c *Consumer) handleInteractionMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	c.l.Infof(ctx, "event.delivery.kafka.consumer.handleInteractionMessage: processing message from partition %d, offset %d",
		msg.Partition, msg.Offset)

	var message kafkaDelivery.InteractionMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "event.delivery.kafka.consumer.handleInteractionMessage: invalid message format (skipping): %v", err)
		return nil // Skip invalid messages
	}

	if message.EventType == "" || message.ImageID == "" {
		c.l.Warnf(ctx, "event.delivery.kafka.consumer.handleInteractionMessage: missing required fields (skipping)")
		return nil
	}

	input := toRecordInput(message)

	sc := model.Scope{
		UserID:    "system",
		Role:      "system",
		SessionID: message.SessionID,
	}
	ctx = scope.SetScopeToContext(ctx, sc)

	recorded, err := c.uc.Record(ctx, sc, input)
	if err != nil {
		c.l.Errorf(ctx, "event.delivery.kafka.consumer.handleInteractionMessage: usecase Record failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "event.delivery.kafka.consumer.handleInteractionMessage: recorded %s event %s (engagement %.1f)",
		recorded.EventType, recorded.ID, recorded.EngagementScore)
	return nil
}
