package rabbitmq

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// IPublisher publishes messages to a topic exchange.
type IPublisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
	IsReady() bool
	Close() error
}

// NewPublisher dials RabbitMQ, opens a channel and declares the exchange.
func NewPublisher(cfg Config) (IPublisher, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("rabbitmq: url is required")
	}
	if cfg.Exchange == "" {
		return nil, fmt.Errorf("rabbitmq: exchange is required")
	}

	conn, err := dialWithTimeout(cfg.URL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq: failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, exchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq: failed to declare exchange %s: %w", cfg.Exchange, err)
	}

	return &publisherImpl{config: cfg, conn: conn, ch: ch}, nil
}

func dialWithTimeout(url string) (*amqp.Connection, error) {
	deadline := time.Now().Add(RetryConnectionTimeout)
	for {
		conn, err := amqp.Dial(url)
		if err == nil {
			return conn, nil
		}
		if time.Now().After(deadline) {
			return nil, ErrConnectionTimeout
		}
		time.Sleep(RetryConnectionDelay)
	}
}

// Publish sends a persistent message with the given routing key.
func (p *publisherImpl) Publish(ctx context.Context, routingKey string, body []byte) error {
	if !p.IsReady() {
		return ErrNotConnected
	}
	return p.ch.PublishWithContext(ctx, p.config.Exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  contentType,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
}

// IsReady reports whether the connection is open.
func (p *publisherImpl) IsReady() bool {
	return p.conn != nil && !p.conn.IsClosed()
}

// Close closes the channel and connection.
func (p *publisherImpl) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
