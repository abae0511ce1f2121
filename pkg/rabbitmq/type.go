package rabbitmq

import (
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Config holds RabbitMQ connection configuration.
type Config struct {
	URL      string
	Exchange string
}

const (
	// RetryConnectionDelay is the wait between dial attempts.
	RetryConnectionDelay = 2 * time.Second
	// RetryConnectionTimeout bounds the initial connection attempt.
	RetryConnectionTimeout = 30 * time.Second

	exchangeKind = "topic"
	contentType  = "application/json"
)

// publisherImpl implements IPublisher over a single connection/channel pair.
type publisherImpl struct {
	config Config
	conn   *amqp.Connection
	ch     *amqp.Channel
}
