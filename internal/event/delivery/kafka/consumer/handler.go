package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type interactionHandler struct {
	consumer *Consumer
}

func (h *interactionHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *interactionHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *interactionHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleInteractionMessage(msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "event.delivery.kafka.consumer.ConsumeInteractions: failed to process message: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
