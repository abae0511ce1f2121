package usecase

import (
	"image-insights-srv/internal/metrics"
	"image-insights-srv/pkg/log"
)

// Baselines are the "before optimization" Core Web Vitals a sample is
// compared against.
type Baselines struct {
	LCPMs float64
	CLS   float64
	INPMs float64
}

type Config struct {
	Baselines Baselines

	// Quality blend weights, must sum to 1.
	WeightFormat      float64
	WeightResolution  float64
	WeightCompression float64

	// SEO composite weights, must sum to 100.
	WeightMetadataQuality       float64
	WeightTechnicalOptimization float64
	WeightSchemaPresence        float64
	WeightContentRelevance      float64

	// CTRUpliftFactor scales the projected CTR gain at a perfect SEO score.
	CTRUpliftFactor float64

	// FormatQuality maps a format to its delivery quality in [0,100].
	FormatQuality map[string]float64

	// IdealMegapixels is the resolution at which the resolution component
	// reaches full credit.
	IdealMegapixels float64
}

func DefaultConfig() Config {
	return Config{
		Baselines: Baselines{
			LCPMs: 4000,
			CLS:   0.25,
			INPMs: 500,
		},
		WeightFormat:                0.3,
		WeightResolution:            0.3,
		WeightCompression:           0.4,
		WeightMetadataQuality:       30,
		WeightTechnicalOptimization: 25,
		WeightSchemaPresence:        25,
		WeightContentRelevance:      20,
		CTRUpliftFactor:             0.3,
		FormatQuality: map[string]float64{
			"avif": 100,
			"webp": 90,
			"jpeg": 70,
			"png":  60,
			"gif":  40,
		},
		IdealMegapixels: 2.0,
	}
}

type implUseCase struct {
	l   log.Logger
	cfg Config
}

func New(l log.Logger, cfg Config) metrics.UseCase {
	return &implUseCase{
		l:   l,
		cfg: cfg,
	}
}
