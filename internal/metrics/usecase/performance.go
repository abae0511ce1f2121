package usecase

import (
	"context"

	"image-insights-srv/internal/metrics"
	"image-insights-srv/internal/model"
)

// bytesPerPixel assumes 8-bit RGB for the uncompressed original estimate.
const bytesPerPixel = 3

func (uc *implUseCase) ComputePerformance(ctx context.Context, sc model.Scope, input metrics.PerformanceSample) (metrics.PerformanceMetrics, error) {
	if err := uc.validateSample(input); err != nil {
		uc.l.Warnf(ctx, "metrics.usecase.ComputePerformance: validate: %v", err)
		return metrics.PerformanceMetrics{}, err
	}

	cwv := metrics.CoreWebVitals{
		LCP: vitalsEntry(input.LCPMs, uc.cfg.Baselines.LCPMs),
		CLS: vitalsEntry(input.CLS, uc.cfg.Baselines.CLS),
		INP: vitalsEntry(input.INPMs, uc.cfg.Baselines.INPMs),
	}

	compression := uc.compression(input)
	quality := uc.qualityScore(input, compression.Ratio)

	return metrics.PerformanceMetrics{
		ImageID:       input.ImageID,
		CoreWebVitals: cwv,
		Timings: metrics.Timings{
			LoadTimeMs:   input.LoadTimeMs,
			RenderTimeMs: input.RenderTimeMs,
			DecodeTimeMs: input.DecodeTimeMs,
		},
		Compression:  compression,
		QualityScore: quality,
		Grade:        gradeForScore(quality),
	}, nil
}

func (uc *implUseCase) validateSample(input metrics.PerformanceSample) error {
	switch {
	case input.LCPMs < 0:
		return invalidSampleErr("lcp_ms")
	case input.CLS < 0:
		return invalidSampleErr("cls")
	case input.INPMs < 0:
		return invalidSampleErr("inp_ms")
	case input.LoadTimeMs < 0:
		return invalidSampleErr("load_time_ms")
	case input.RenderTimeMs < 0:
		return invalidSampleErr("render_time_ms")
	case input.DecodeTimeMs < 0:
		return invalidSampleErr("decode_time_ms")
	case input.TransferSizeBytes < 0:
		return invalidSampleErr("transfer_size_bytes")
	case input.Width < 0 || input.Height < 0:
		return invalidSampleErr("dimensions")
	}
	return nil
}

// vitalsEntry computes the improvement over baseline as a percentage,
// floored at 0 so a regression never reads as negative progress.
func vitalsEntry(observed, baseline float64) metrics.VitalsEntry {
	entry := metrics.VitalsEntry{
		Observed: observed,
		Baseline: baseline,
	}
	if baseline > 0 {
		entry.Improvement = (baseline - observed) / baseline * 100
	}
	if entry.Improvement < 0 {
		entry.Improvement = 0
	}
	return entry
}

func (uc *implUseCase) compression(input metrics.PerformanceSample) metrics.Compression {
	original := int64(input.Width) * int64(input.Height) * bytesPerPixel
	c := metrics.Compression{
		OriginalEstimateBytes: original,
		TransferSizeBytes:     input.TransferSizeBytes,
	}
	if original > 0 {
		c.Ratio = float64(original-input.TransferSizeBytes) / float64(original) * 100
	}
	if c.Ratio < 0 {
		c.Ratio = 0
	}
	return c
}

func (uc *implUseCase) qualityScore(input metrics.PerformanceSample, compressionRatio float64) float64 {
	formatScore := uc.cfg.FormatQuality[input.Format]

	megapixels := float64(input.Width) * float64(input.Height) / 1e6
	resolutionScore := 100.0
	if uc.cfg.IdealMegapixels > 0 && megapixels < uc.cfg.IdealMegapixels {
		resolutionScore = megapixels / uc.cfg.IdealMegapixels * 100
	}

	score := formatScore*uc.cfg.WeightFormat +
		resolutionScore*uc.cfg.WeightResolution +
		compressionRatio*uc.cfg.WeightCompression
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func gradeForScore(score float64) string {
	switch {
	case score > 90:
		return metrics.GradeA
	case score > 75:
		return metrics.GradeB
	case score > 60:
		return metrics.GradeC
	case score > 40:
		return metrics.GradeD
	default:
		return metrics.GradeF
	}
}
