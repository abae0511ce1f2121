package http

import (
	"image-insights-srv/internal/metadata"
	"image-insights-srv/internal/model"
)

// =====================================================
// Request DTOs
// =====================================================

type synthesizeReq struct {
	Descriptor descriptorReq  `json:"descriptor" binding:"required"`
	Product    *productCtxReq `json:"product,omitempty"`
}

type descriptorReq struct {
	ProductID string `json:"product_id" binding:"required"`
	View      string `json:"view" binding:"required"`
	Width     int    `json:"width" binding:"required,gt=0"`
	Height    int    `json:"height" binding:"required,gt=0"`
	Format    string `json:"format" binding:"required"`
	URL       string `json:"url,omitempty"`
	AltText   string `json:"alt_text,omitempty"`
}

type productCtxReq struct {
	ProductName string   `json:"product_name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Creator     string   `json:"creator,omitempty"`
	LicenseType string   `json:"license_type,omitempty"`
	PriceCents  int64    `json:"price_cents,omitempty"`
	Currency    string   `json:"currency,omitempty"`
	InStock     bool     `json:"in_stock,omitempty"`
}

func (r synthesizeReq) toInput() metadata.SynthesizeInput {
	input := metadata.SynthesizeInput{
		Descriptor: model.ImageDescriptor{
			ProductID: r.Descriptor.ProductID,
			View:      r.Descriptor.View,
			Width:     r.Descriptor.Width,
			Height:    r.Descriptor.Height,
			Format:    r.Descriptor.Format,
			URL:       r.Descriptor.URL,
			AltText:   r.Descriptor.AltText,
		},
	}
	if r.Product != nil {
		input.Product = model.ProductContext{
			ProductName: r.Product.ProductName,
			Description: r.Product.Description,
			Category:    r.Product.Category,
			Tags:        r.Product.Tags,
			Brand:       r.Product.Brand,
			Creator:     r.Product.Creator,
			LicenseType: r.Product.LicenseType,
			PriceCents:  r.Product.PriceCents,
			Currency:    r.Product.Currency,
			InStock:     r.Product.InStock,
		}
	}
	return input
}

// =====================================================
// Response DTOs
// =====================================================

type synthesizeResp struct {
	Filenames filenameSetResp   `json:"filenames"`
	Metadata  imageMetadataResp `json:"metadata"`
	Copyright copyrightResp     `json:"copyright"`
}

type filenameSetResp struct {
	IDBased     string `json:"id_based"`
	NameBased   string `json:"name_based"`
	Descriptive string `json:"descriptive"`
	CDNPath     string `json:"cdn_path"`
	AspectRatio string `json:"aspect_ratio"`
}

type imageMetadataResp struct {
	Dimensions dimensionResp `json:"dimensions"`
	Content    contentResp   `json:"content"`
	Creator    string        `json:"creator,omitempty"`
	Copyright  string        `json:"copyright,omitempty"`
	Dates      dateResp      `json:"dates"`
	SEO        seoResp       `json:"seo"`
	Technical  technicalResp `json:"technical"`
	Quality    qualityResp   `json:"quality"`
	Usage      usageResp     `json:"usage"`
}

type dimensionResp struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	AspectRatio string  `json:"aspect_ratio"`
	Orientation string  `json:"orientation"`
	Megapixels  float64 `json:"megapixels"`
}

type contentResp struct {
	Keywords []string `json:"keywords"`
	Tags     []string `json:"tags,omitempty"`
	Category string   `json:"category,omitempty"`
}

type dateResp struct {
	Created   int64 `json:"created"`
	Modified  int64 `json:"modified"`
	Published int64 `json:"published"`
}

type seoResp struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	KeywordString string `json:"keyword_string"`
}

type technicalResp struct {
	MIMEType           string `json:"mime_type"`
	ColorSpace         string `json:"color_space"`
	BitDepth           int    `json:"bit_depth"`
	EstimatedSizeBytes int64  `json:"estimated_size_bytes"`
}

type qualityResp struct {
	Sharpness     float64 `json:"sharpness"`
	Contrast      float64 `json:"contrast"`
	ColorAccuracy float64 `json:"color_accuracy"`
}

type usageResp struct {
	CDNVariants map[string]string `json:"cdn_variants"`
	AltText     string            `json:"alt_text"`
	Caption     string            `json:"caption"`
}

type copyrightResp struct {
	Statement       string        `json:"statement"`
	AttributionText string        `json:"attribution_text,omitempty"`
	LicenseType     string        `json:"license_type"`
	Restrictions    []string      `json:"restrictions"`
	Permissions     []string      `json:"permissions"`
	Usage           usageRightsResp `json:"usage"`
	Watermark       bool          `json:"watermark"`
	Citations       citationsResp `json:"citations"`
}

type usageRightsResp struct {
	CanUseCommercially bool `json:"can_use_commercially"`
	CanModify          bool `json:"can_modify"`
	NeedsAttribution   bool `json:"needs_attribution"`
	CanRedistribute    bool `json:"can_redistribute"`
}

type citationsResp struct {
	MLA     string `json:"mla"`
	APA     string `json:"apa"`
	Chicago string `json:"chicago"`
	HTML    string `json:"html"`
}

func (h *handler) newSynthesizeResp(output metadata.SynthesizeOutput) synthesizeResp {
	m := output.Metadata
	cp := output.Copyright

	return synthesizeResp{
		Filenames: filenameSetResp{
			IDBased:     output.Filenames.IDBased,
			NameBased:   output.Filenames.NameBased,
			Descriptive: output.Filenames.Descriptive,
			CDNPath:     output.Filenames.CDNPath,
			AspectRatio: output.Filenames.AspectRatio,
		},
		Metadata: imageMetadataResp{
			Dimensions: dimensionResp{
				Width:       m.Dimensions.Width,
				Height:      m.Dimensions.Height,
				AspectRatio: m.Dimensions.AspectRatio,
				Orientation: m.Dimensions.Orientation,
				Megapixels:  m.Dimensions.Megapixels,
			},
			Content: contentResp{
				Keywords: m.Content.Keywords,
				Tags:     m.Content.Tags,
				Category: m.Content.Category,
			},
			Creator:   m.Creator,
			Copyright: m.Copyright,
			Dates: dateResp{
				Created:   m.Dates.Created,
				Modified:  m.Dates.Modified,
				Published: m.Dates.Published,
			},
			SEO: seoResp{
				Title:         m.SEO.Title,
				Description:   m.SEO.Description,
				KeywordString: m.SEO.KeywordString,
			},
			Technical: technicalResp{
				MIMEType:           m.Technical.MIMEType,
				ColorSpace:         m.Technical.ColorSpace,
				BitDepth:           m.Technical.BitDepth,
				EstimatedSizeBytes: m.Technical.EstimatedSizeBytes,
			},
			Quality: qualityResp{
				Sharpness:     m.Quality.Sharpness,
				Contrast:      m.Quality.Contrast,
				ColorAccuracy: m.Quality.ColorAccuracy,
			},
			Usage: usageResp{
				CDNVariants: m.Usage.CDNVariants,
				AltText:     m.Usage.AltText,
				Caption:     m.Usage.Caption,
			},
		},
		Copyright: copyrightResp{
			Statement:       cp.Statement,
			AttributionText: cp.AttributionText,
			LicenseType:     cp.LicenseType,
			Restrictions:    cp.Restrictions,
			Permissions:     cp.Permissions,
			Usage: usageRightsResp{
				CanUseCommercially: cp.Usage.CanUseCommercially,
				CanModify:          cp.Usage.CanModify,
				NeedsAttribution:   cp.Usage.NeedsAttribution,
				CanRedistribute:    cp.Usage.CanRedistribute,
			},
			Watermark: cp.Watermark,
			Citations: citationsResp{
				MLA:     cp.Citations.MLA,
				APA:     cp.Citations.APA,
				Chicago: cp.Citations.Chicago,
				HTML:    cp.Citations.HTML,
			},
		},
	}
}
