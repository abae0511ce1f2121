package consumer

import (
	"context"

	kafkaDelivery "image-insights-srv/internal/event/delivery/kafka"
)

// ConsumeInteractions starts consuming storefront interaction messages.
func (c *Consumer) ConsumeInteractions(ctx context.Context) error {
	group, err := c.createConsumerGroup(kafkaDelivery.ConsumerGroupInteractionEvents)
	if err != nil {
		return err
	}
	c.interactionGroup = group

	topic := c.kafkaConfig.ConsumeTopic
	if topic == "" {
		topic = kafkaDelivery.TopicStorefrontInteractions
	}

	handler := &interactionHandler{consumer: c}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{topic}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", topic)

	return nil
}
