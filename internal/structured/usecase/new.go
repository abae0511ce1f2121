package usecase

import (
	"image-insights-srv/internal/structured"
	"image-insights-srv/pkg/log"
	"image-insights-srv/pkg/rabbitmq"
)

// Config tunes document emission.
type Config struct {
	// RoutingKeyPrefix prefixes the per-kind routing key on the broker
	// exchange (default "structured").
	RoutingKeyPrefix string
}

// DefaultConfig returns the shipped emitter configuration.
func DefaultConfig() Config {
	return Config{
		RoutingKeyPrefix: "structured",
	}
}

type implUseCase struct {
	publisher rabbitmq.IPublisher
	l         log.Logger
	cfg       Config
}

// New creates the structured-data usecase. The publisher may be nil, in
// which case documents are returned without broker delivery.
func New(publisher rabbitmq.IPublisher, l log.Logger, cfg Config) structured.UseCase {
	return &implUseCase{
		publisher: publisher,
		l:         l,
		cfg:       cfg,
	}
}
