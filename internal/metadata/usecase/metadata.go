package usecase

import (
	"fmt"
	"strings"

	"image-insights-srv/internal/metadata"
	"image-insights-srv/internal/model"
)

const (
	bitDepth          = 8
	colorSpace        = "sRGB"
	maxSEODescription = 160
)

// formatBaseQuality is a deterministic quality prior per codec.
var formatBaseQuality = map[string]float64{
	model.FormatAVIF: 0.95,
	model.FormatWebP: 0.90,
	model.FormatPNG:  0.90,
	model.FormatJPEG: 0.85,
	model.FormatGIF:  0.60,
}

// cdnVariantWidths are the widths served by the image CDN.
var cdnVariantWidths = map[string]int{
	"thumbnail": 160,
	"small":     320,
	"medium":    768,
	"large":     1600,
}

func (uc *implUseCase) buildMetadata(d model.ImageDescriptor, product model.ProductContext, keywords []string, filenames metadata.FilenameSet) metadata.ImageMetadata {
	now := uc.clock.Now().UnixMilli()

	variants := make(map[string]string, len(cdnVariantWidths))
	for name, width := range cdnVariantWidths {
		variants[name] = fmt.Sprintf("%s?w=%d", filenames.CDNPath, width)
	}

	altText := d.AltText
	if altText == "" {
		altText = fmt.Sprintf("%s - %s view", product.ProductName, d.View)
	}

	return metadata.ImageMetadata{
		Dimensions: metadata.DimensionInfo{
			Width:       d.Width,
			Height:      d.Height,
			AspectRatio: reduceRatio(d.Width, d.Height),
			Orientation: ratioBucket(d.Width, d.Height),
			Megapixels:  float64(d.Width) * float64(d.Height) / 1e6,
		},
		Content: metadata.ContentInfo{
			Keywords: keywords,
			Tags:     product.Tags,
			Category: product.Category,
		},
		Creator:   product.Creator,
		Copyright: product.LicenseType,
		Dates: metadata.DateInfo{
			Created:   now,
			Modified:  now,
			Published: now,
		},
		SEO: metadata.SEOInfo{
			Title:         seoTitle(d, product),
			Description:   truncate(seoDescription(d, product), maxSEODescription),
			KeywordString: strings.Join(keywords, ", "),
		},
		Technical: metadata.TechnicalInfo{
			MIMEType:           model.MimeType(d.Format),
			ColorSpace:         colorSpace,
			BitDepth:           bitDepth,
			EstimatedSizeBytes: uc.estimateFileSize(d),
		},
		Quality: uc.estimateQuality(d),
		Usage: metadata.UsageInfo{
			CDNVariants: variants,
			AltText:     altText,
			Caption:     fmt.Sprintf("%s (%s)", product.ProductName, d.View),
		},
	}
}

// estimateFileSize is a closed-form estimate from pixel count and a
// per-format compression-efficiency constant. Never measures actual bytes.
func (uc *implUseCase) estimateFileSize(d model.ImageDescriptor) int64 {
	efficiency, ok := uc.cfg.CompressionEfficiency[d.Format]
	if !ok {
		efficiency = uc.cfg.CompressionEfficiency[model.FormatJPEG]
	}
	rawBytes := float64(d.Width) * float64(d.Height) * bitDepth / 8
	return int64(rawBytes * efficiency)
}

// estimateQuality derives a deterministic [0,1] quality estimate from the
// codec prior and resolution adequacy.
func (uc *implUseCase) estimateQuality(d model.ImageDescriptor) metadata.QualityEstimate {
	base := formatBaseQuality[d.Format]
	if base == 0 {
		base = 0.75
	}

	minDim := d.Width
	if d.Height < minDim {
		minDim = d.Height
	}
	adequacy := float64(minDim) / 1200
	if adequacy > 1 {
		adequacy = 1
	}

	return metadata.QualityEstimate{
		Sharpness:     clamp01(base * adequacy),
		Contrast:      clamp01(base * 0.95),
		ColorAccuracy: clamp01(base),
	}
}

func seoTitle(d model.ImageDescriptor, product model.ProductContext) string {
	if product.Brand != "" {
		return fmt.Sprintf("%s by %s - %s view", product.ProductName, product.Brand, d.View)
	}
	return fmt.Sprintf("%s - %s view", product.ProductName, d.View)
}

func seoDescription(d model.ImageDescriptor, product model.ProductContext) string {
	if product.Description != "" {
		return product.Description
	}
	return fmt.Sprintf("%s product image, %s view, %dx%d %s",
		product.ProductName, d.View, d.Width, d.Height, d.Format)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
