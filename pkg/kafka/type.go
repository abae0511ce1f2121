package kafka

import (
	"context"

	"github.com/IBM/sarama"
)

// IProducer publishes messages to a fixed topic.
type IProducer interface {
	Publish(key, value []byte) error
	HealthCheck() error
	Close() error
}

// IConsumer is the consumer-group surface used by delivery layers.
type IConsumer interface {
	ConsumeWithContext(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error
	Errors() <-chan error
	Close() error
}

// Config holds configuration for the Kafka producer.
type Config struct {
	Brokers []string
	Topic   string
}

// ConsumerConfig holds configuration for a Kafka consumer group.
type ConsumerConfig struct {
	Brokers []string
	GroupID string
}
