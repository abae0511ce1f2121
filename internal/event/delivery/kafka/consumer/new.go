package consumer

import (
	"fmt"

	"image-insights-srv/config"
	"image-insights-srv/internal/event"
	pkgKafka "image-insights-srv/pkg/kafka"
	"image-insights-srv/pkg/log"
)

// Config holds the configuration for the event consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     event.UseCase
}

// Consumer manages the Kafka consumer group for interaction events.
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          event.UseCase

	interactionGroup pkgKafka.IConsumer
}

// New creates a new event consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &Consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

// Close closes the consumer group
func (c *Consumer) Close() error {
	if c.interactionGroup != nil {
		if err := c.interactionGroup.Close(); err != nil {
			return fmt.Errorf("failed to close interaction group: %w", err)
		}
	}
	return nil
}

func (c *Consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", groupID, err)
	}
	return group, nil
}
