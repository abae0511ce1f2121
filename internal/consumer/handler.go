package consumer

import (
	"context"
	"fmt"

	eventConsumer "image-insights-srv/internal/event/delivery/kafka/consumer"
	eventPostgre "image-insights-srv/internal/event/repository/postgre"
	eventUsecase "image-insights-srv/internal/event/usecase"
	"image-insights-srv/pkg/util"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	eventConsumer *eventConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	repo := eventPostgre.New(srv.postgresDB, srv.l)

	cfg := eventUsecase.DefaultConfig()
	cfg.WeightDuration = srv.config.Scoring.Engagement.Duration
	cfg.WeightPosition = srv.config.Scoring.Engagement.Position
	cfg.WeightInteraction = srv.config.Scoring.Engagement.Interaction
	cfg.WeightDevice = srv.config.Scoring.Engagement.Device

	eventUC := eventUsecase.New(repo, srv.kafkaProducer, util.NewRealClock(), srv.l, cfg)

	eventCons, err := eventConsumer.New(eventConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     eventUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create event consumer: %w", err)
	}

	srv.l.Infof(ctx, "Event domain initialized")

	return &domainConsumers{
		eventConsumer: eventCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.eventConsumer.ConsumeInteractions(ctx); err != nil {
		return fmt.Errorf("failed to start event consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.eventConsumer != nil {
		if err := consumers.eventConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing event consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
