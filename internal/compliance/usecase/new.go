package usecase

import (
	"sort"

	"image-insights-srv/internal/compliance"
	"image-insights-srv/pkg/log"
)

// Config holds scoring weights and the registered platform specs.
// Weights must sum to 100.
type Config struct {
	WeightDimensions int
	WeightFormat     int
	WeightAltText    int
	WeightFileSize   int

	// CompressionEfficiency drives the closed-form file-size estimate,
	// matching the metadata synthesizer's table.
	CompressionEfficiency map[string]float64

	Platforms map[string]compliance.PlatformSpec
}

// DefaultConfig returns the documented weights and the two shipped platforms.
func DefaultConfig() Config {
	return Config{
		WeightDimensions: 35,
		WeightFormat:     25,
		WeightAltText:    25,
		WeightFileSize:   15,
		CompressionEfficiency: map[string]float64{
			"avif": 0.04,
			"webp": 0.06,
			"jpeg": 0.10,
			"gif":  0.20,
			"png":  0.35,
		},
		Platforms: DefaultPlatforms(),
	}
}

// DefaultPlatforms returns the shipped visual-search and social-pin specs.
func DefaultPlatforms() map[string]compliance.PlatformSpec {
	return map[string]compliance.PlatformSpec{
		compliance.PlatformGoogleLens: {
			Key:              compliance.PlatformGoogleLens,
			Name:             "Google Lens",
			MinWidth:         1200,
			MinHeight:        1200,
			IdealWidth:       2400,
			IdealHeight:      2400,
			AcceptedFormats:  []string{"jpeg", "png", "webp", "avif"},
			PreferredFormats: []string{"webp", "avif"},
			AltTextMin:       20,
			AltTextMax:       125,
			MaxFileSizeBytes: 8_000_000,
		},
		compliance.PlatformPinterest: {
			Key:              compliance.PlatformPinterest,
			Name:             "Pinterest",
			MinWidth:         600,
			MinHeight:        900,
			IdealWidth:       1000,
			IdealHeight:      1500,
			AcceptedFormats:  []string{"jpeg", "png", "webp"},
			PreferredFormats: []string{"webp", "jpeg"},
			AltTextMin:       30,
			AltTextMax:       500,
			MaxFileSizeBytes: 20_000_000,
		},
	}
}

type implUseCase struct {
	l   log.Logger
	cfg Config
}

// New creates the compliance usecase.
func New(l log.Logger, cfg Config) compliance.UseCase {
	return &implUseCase{l: l, cfg: cfg}
}

// sortedPlatforms returns the registered specs in stable key order.
func (uc *implUseCase) sortedPlatforms() []compliance.PlatformSpec {
	keys := make([]string, 0, len(uc.cfg.Platforms))
	for k := range uc.cfg.Platforms {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	specs := make([]compliance.PlatformSpec, 0, len(keys))
	for _, k := range keys {
		specs = append(specs, uc.cfg.Platforms[k])
	}
	return specs
}
