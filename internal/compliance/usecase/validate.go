package usecase

import (
	"context"
	"fmt"

	"image-insights-srv/internal/compliance"
	"image-insights-srv/internal/model"
)

const (
	// minDimensionCredit is the fraction of the dimension weight earned at
	// the platform minimum; the remainder is earned linearly toward ideal.
	minDimensionCredit = 0.8

	// acceptedFormatCredit is the fraction of the format weight earned by
	// an accepted but not preferred format.
	acceptedFormatCredit = 0.6

	// outOfBandAltCredit is the fraction of the alt-text weight earned by
	// alt text present but outside the platform band.
	outOfBandAltCredit = 0.4
)

// Validate scores a descriptor against a named platform spec. Pure and
// stateless; recomputed whenever the descriptor changes.
func (uc *implUseCase) Validate(ctx context.Context, sc model.Scope, input compliance.ValidateInput) (compliance.Report, error) {
	spec, ok := uc.cfg.Platforms[input.Platform]
	if !ok {
		uc.l.Warnf(ctx, "compliance.usecase.Validate: unknown platform %q", input.Platform)
		return compliance.Report{}, compliance.ErrUnknownPlatform
	}

	d := input.Descriptor
	if d.ProductID == "" {
		return compliance.Report{}, compliance.ErrMissingField
	}
	if d.Width <= 0 || d.Height <= 0 {
		return compliance.Report{}, compliance.ErrInvalidDimensions
	}
	if !model.KnownFormats[d.Format] {
		return compliance.Report{}, compliance.ErrUnknownFormat
	}

	var (
		score           float64
		checks          compliance.Checks
		recommendations []string
	)

	// Checks scored in the fixed recommendation order:
	// dimensions, format, alt-text, file size.
	dimScore, dimOK, dimRec := uc.scoreDimensions(d, spec)
	score += dimScore
	checks.Dimension = dimOK
	if dimRec != "" {
		recommendations = append(recommendations, dimRec)
	}

	fmtScore, fmtOK, fmtRec := uc.scoreFormat(d, spec)
	score += fmtScore
	checks.Format = fmtOK
	if fmtRec != "" {
		recommendations = append(recommendations, fmtRec)
	}

	altScore, altOK, altRec := uc.scoreAltText(d, spec)
	score += altScore
	checks.AltText = altOK
	if altRec != "" {
		recommendations = append(recommendations, altRec)
	}

	estimatedSize := uc.estimateFileSize(d)
	sizeScore, sizeOK, sizeRec := uc.scoreFileSize(estimatedSize, spec)
	score += sizeScore
	checks.FileSize = sizeOK
	if sizeRec != "" {
		recommendations = append(recommendations, sizeRec)
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	report := compliance.Report{
		Platform:        spec.Key,
		Status:          statusForScore(score),
		Score:           score,
		Checks:          checks,
		Recommendations: recommendations,
		Details: compliance.Details{
			ActualWidth:        d.Width,
			ActualHeight:       d.Height,
			RequiredMinWidth:   spec.MinWidth,
			RequiredMinHeight:  spec.MinHeight,
			IdealWidth:         spec.IdealWidth,
			IdealHeight:        spec.IdealHeight,
			AltTextLength:      len(d.AltText),
			AltTextBand:        [2]int{spec.AltTextMin, spec.AltTextMax},
			Format:             d.Format,
			EstimatedSizeBytes: estimatedSize,
			MaxFileSizeBytes:   spec.MaxFileSizeBytes,
		},
	}

	uc.l.Infof(ctx, "compliance.usecase.Validate: product %s scored %.1f (%s) on %s",
		d.ProductID, report.Score, report.Status, spec.Key)

	return report, nil
}

// Platforms returns the registered platform specs in stable order.
func (uc *implUseCase) Platforms(ctx context.Context) []compliance.PlatformSpec {
	return uc.sortedPlatforms()
}

// scoreDimensions earns minDimensionCredit of the weight at the platform
// minimum and the remainder linearly toward the ideal size. Monotone
// nondecreasing in width and height.
func (uc *implUseCase) scoreDimensions(d model.ImageDescriptor, spec compliance.PlatformSpec) (float64, bool, string) {
	weight := float64(uc.cfg.WeightDimensions)

	if d.Width < spec.MinWidth || d.Height < spec.MinHeight {
		return 0, false, fmt.Sprintf("Increase image dimensions to at least %dx%d (currently %dx%d)",
			spec.MinWidth, spec.MinHeight, d.Width, d.Height)
	}

	if d.Width >= spec.IdealWidth && d.Height >= spec.IdealHeight {
		return weight, true, ""
	}

	progress := 1.0
	if spec.IdealWidth > spec.MinWidth {
		p := float64(d.Width-spec.MinWidth) / float64(spec.IdealWidth-spec.MinWidth)
		if p < progress {
			progress = p
		}
	}
	if spec.IdealHeight > spec.MinHeight {
		p := float64(d.Height-spec.MinHeight) / float64(spec.IdealHeight-spec.MinHeight)
		if p < progress {
			progress = p
		}
	}
	if progress > 1 {
		progress = 1
	}

	rec := fmt.Sprintf("For best results use %dx%d or larger", spec.IdealWidth, spec.IdealHeight)
	return weight * (minDimensionCredit + (1-minDimensionCredit)*progress), true, rec
}

func (uc *implUseCase) scoreFormat(d model.ImageDescriptor, spec compliance.PlatformSpec) (float64, bool, string) {
	weight := float64(uc.cfg.WeightFormat)

	for _, f := range spec.PreferredFormats {
		if d.Format == f {
			return weight, true, ""
		}
	}
	for _, f := range spec.AcceptedFormats {
		if d.Format == f {
			rec := fmt.Sprintf("Convert to a preferred format (%v) for better compression", spec.PreferredFormats)
			return weight * acceptedFormatCredit, true, rec
		}
	}

	rec := fmt.Sprintf("Format %q is not accepted; use one of %v", d.Format, spec.AcceptedFormats)
	return 0, false, rec
}

func (uc *implUseCase) scoreAltText(d model.ImageDescriptor, spec compliance.PlatformSpec) (float64, bool, string) {
	weight := float64(uc.cfg.WeightAltText)
	length := len(d.AltText)

	if length >= spec.AltTextMin && length <= spec.AltTextMax {
		return weight, true, ""
	}
	if length == 0 {
		return 0, false, fmt.Sprintf("Add alt text (%d-%d characters)", spec.AltTextMin, spec.AltTextMax)
	}

	rec := fmt.Sprintf("Adjust alt text length to %d-%d characters (currently %d)",
		spec.AltTextMin, spec.AltTextMax, length)
	return weight * outOfBandAltCredit, false, rec
}

func (uc *implUseCase) scoreFileSize(estimatedSize int64, spec compliance.PlatformSpec) (float64, bool, string) {
	weight := float64(uc.cfg.WeightFileSize)

	if estimatedSize <= spec.MaxFileSizeBytes {
		return weight, true, ""
	}

	rec := fmt.Sprintf("Reduce estimated file size below %d bytes (currently ~%d)",
		spec.MaxFileSizeBytes, estimatedSize)
	return 0, false, rec
}

// estimateFileSize mirrors the metadata synthesizer's closed-form estimate.
func (uc *implUseCase) estimateFileSize(d model.ImageDescriptor) int64 {
	efficiency, ok := uc.cfg.CompressionEfficiency[d.Format]
	if !ok {
		efficiency = uc.cfg.CompressionEfficiency[model.FormatJPEG]
	}
	return int64(float64(d.Width) * float64(d.Height) * efficiency)
}

func statusForScore(score float64) string {
	switch {
	case score >= 90:
		return compliance.StatusExcellent
	case score >= 75:
		return compliance.StatusGood
	case score >= 60:
		return compliance.StatusAcceptable
	default:
		return compliance.StatusNeedsImprovement
	}
}
