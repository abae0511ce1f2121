package usecase

import (
	"image-insights-srv/internal/metadata"
	"image-insights-srv/pkg/catalogsrv"
	"image-insights-srv/pkg/log"
	"image-insights-srv/pkg/util"
)

// Config holds the synthesis tuning tables. All tables are immutable after
// construction.
type Config struct {
	MaxKeywords int // Max keywords kept after dedupe (default 30)

	// CompressionEfficiency maps format to estimated bytes-per-pixel-bit
	// ratio. Lower is better compression.
	CompressionEfficiency map[string]float64

	// LicenseRules maps licenseType to its copyright synthesis rule.
	LicenseRules map[string]metadata.LicenseRule
}

// DefaultConfig returns the shipped synthesis tables.
func DefaultConfig() Config {
	return Config{
		MaxKeywords:           30,
		CompressionEfficiency: defaultCompressionEfficiency(),
		LicenseRules:          defaultLicenseRules(),
	}
}

func defaultCompressionEfficiency() map[string]float64 {
	return map[string]float64{
		"avif": 0.04,
		"webp": 0.06,
		"jpeg": 0.10,
		"gif":  0.20,
		"png":  0.35,
	}
}

// implUseCase implements metadata.UseCase.
type implUseCase struct {
	catalogSrv catalogsrv.ICatalog
	clock      util.Clock
	l          log.Logger
	cfg        Config
}

// New creates the metadata usecase.
func New(
	catalogSrv catalogsrv.ICatalog,
	clock util.Clock,
	l log.Logger,
	cfg Config,
) metadata.UseCase {
	return &implUseCase{
		catalogSrv: catalogSrv,
		clock:      clock,
		l:          l,
		cfg:        cfg,
	}
}
