package usecase

import (
	"sync"

	"image-insights-srv/internal/event"
	"image-insights-srv/internal/event/repository"
	"image-insights-srv/internal/model"
	"image-insights-srv/pkg/kafka"
	"image-insights-srv/pkg/log"
	"image-insights-srv/pkg/util"
)

// Config holds the engagement weight tables. The four weights must sum
// to 100; each factor is in [0,1], so the score stays in [0,100].
type Config struct {
	WeightDuration    int
	WeightPosition    int
	WeightInteraction int
	WeightDevice      int

	// ReferenceDurationMs is the dwell time that earns the full duration
	// factor (ratio-scaled below it).
	ReferenceDurationMs int64

	// MaxEvents bounds the per-session in-memory log; oldest evicted first.
	MaxEvents int

	InteractionWeights map[string]float64
	PositionFactors    map[string]float64
	DeviceFactors      map[string]float64
}

// DefaultConfig returns the documented engagement weighting.
func DefaultConfig() Config {
	return Config{
		WeightDuration:      25,
		WeightPosition:      15,
		WeightInteraction:   35,
		WeightDevice:        25,
		ReferenceDurationMs: 10_000,
		MaxEvents:           1000,
		InteractionWeights: map[string]float64{
			event.InteractionDownload: 4,
			event.InteractionZoom:     3,
			event.InteractionShare:    3,
			event.InteractionClick:    2,
			event.InteractionHover:    1,
		},
		PositionFactors: map[string]float64{
			event.PositionAboveFold: 1.0,
			event.PositionBelowFold: 0.4,
		},
		DeviceFactors: map[string]float64{
			model.DeviceDesktop: 1.0,
			model.DeviceTablet:  0.8,
			model.DeviceMobile:  0.6,
		},
	}
}

// sessionLog is the bounded, time-ordered in-memory event log for one
// session. Single writer; reads copy.
type sessionLog struct {
	events []model.AnalyticsEvent
}

type implUseCase struct {
	repo     repository.EventRepository
	producer kafka.IProducer
	clock    util.Clock
	l        log.Logger
	cfg      Config

	mu   sync.Mutex
	logs map[string]*sessionLog
}

// New creates the event usecase. repo and producer may be nil; the
// in-memory log then remains the only sink.
func New(
	repo repository.EventRepository,
	producer kafka.IProducer,
	clock util.Clock,
	l log.Logger,
	cfg Config,
) event.UseCase {
	return &implUseCase{
		repo:     repo,
		producer: producer,
		clock:    clock,
		l:        l,
		cfg:      cfg,
		logs:     make(map[string]*sessionLog),
	}
}
