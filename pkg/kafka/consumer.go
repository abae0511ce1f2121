package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
)

// consumerGroup wraps a sarama consumer group behind IConsumer.
type consumerGroup struct {
	group sarama.ConsumerGroup
	errs  chan error
}

// NewConsumer creates a new Kafka consumer group.
func NewConsumer(cfg ConsumerConfig) (IConsumer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if cfg.GroupID == "" {
		return nil, fmt.Errorf("group ID is required")
	}

	config := sarama.NewConfig()
	config.Version = sarama.V2_6_0_0
	config.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer group: %w", err)
	}

	c := &consumerGroup{
		group: group,
		errs:  make(chan error, 1),
	}
	go func() {
		for err := range group.Errors() {
			c.errs <- err
		}
		close(c.errs)
	}()

	return c, nil
}

// ConsumeWithContext joins the group and consumes until the context is done.
func (c *consumerGroup) ConsumeWithContext(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error {
	return c.group.Consume(ctx, topics, handler)
}

// Errors returns the consumer group error channel.
func (c *consumerGroup) Errors() <-chan error {
	return c.errs
}

// Close closes the consumer group.
func (c *consumerGroup) Close() error {
	return c.group.Close()
}
