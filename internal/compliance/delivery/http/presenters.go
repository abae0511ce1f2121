package http

import (
	"image-insights-srv/internal/compliance"
	"image-insights-srv/internal/model"
)

// =====================================================
// Request DTOs
// =====================================================

type validateReq struct {
	Descriptor descriptorReq `json:"descriptor" binding:"required"`
	Platform   string        `json:"platform" binding:"required"`
}

type descriptorReq struct {
	ProductID string `json:"product_id" binding:"required"`
	View      string `json:"view,omitempty"`
	Width     int    `json:"width" binding:"required,gt=0"`
	Height    int    `json:"height" binding:"required,gt=0"`
	Format    string `json:"format" binding:"required"`
	URL       string `json:"url,omitempty"`
	AltText   string `json:"alt_text,omitempty"`
}

func (r validateReq) toInput() compliance.ValidateInput {
	return compliance.ValidateInput{
		Descriptor: model.ImageDescriptor{
			ProductID: r.Descriptor.ProductID,
			View:      r.Descriptor.View,
			Width:     r.Descriptor.Width,
			Height:    r.Descriptor.Height,
			Format:    r.Descriptor.Format,
			URL:       r.Descriptor.URL,
			AltText:   r.Descriptor.AltText,
		},
		Platform: r.Platform,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type reportResp struct {
	Platform        string      `json:"platform"`
	Status          string      `json:"status"`
	Score           float64     `json:"score"`
	Checks          checksResp  `json:"checks"`
	Recommendations []string    `json:"recommendations"`
	Details         detailsResp `json:"details"`
}

type checksResp struct {
	Dimension bool `json:"dimension"`
	AltText   bool `json:"alt_text"`
	Format    bool `json:"format"`
	FileSize  bool `json:"file_size"`
}

type detailsResp struct {
	ActualWidth        int    `json:"actual_width"`
	ActualHeight       int    `json:"actual_height"`
	RequiredMinWidth   int    `json:"required_min_width"`
	RequiredMinHeight  int    `json:"required_min_height"`
	IdealWidth         int    `json:"ideal_width"`
	IdealHeight        int    `json:"ideal_height"`
	AltTextLength      int    `json:"alt_text_length"`
	AltTextMin         int    `json:"alt_text_min"`
	AltTextMax         int    `json:"alt_text_max"`
	Format             string `json:"format"`
	EstimatedSizeBytes int64  `json:"estimated_size_bytes"`
	MaxFileSizeBytes   int64  `json:"max_file_size_bytes"`
}

type platformsResp struct {
	Platforms []platformSpecResp `json:"platforms"`
}

type platformSpecResp struct {
	Key              string   `json:"key"`
	Name             string   `json:"name"`
	MinWidth         int      `json:"min_width"`
	MinHeight        int      `json:"min_height"`
	IdealWidth       int      `json:"ideal_width"`
	IdealHeight      int      `json:"ideal_height"`
	AcceptedFormats  []string `json:"accepted_formats"`
	PreferredFormats []string `json:"preferred_formats"`
	AltTextMin       int      `json:"alt_text_min"`
	AltTextMax       int      `json:"alt_text_max"`
	MaxFileSizeBytes int64    `json:"max_file_size_bytes"`
}

func (h *handler) newReportResp(report compliance.Report) reportResp {
	recommendations := report.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}

	return reportResp{
		Platform: report.Platform,
		Status:   report.Status,
		Score:    report.Score,
		Checks: checksResp{
			Dimension: report.Checks.Dimension,
			AltText:   report.Checks.AltText,
			Format:    report.Checks.Format,
			FileSize:  report.Checks.FileSize,
		},
		Recommendations: recommendations,
		Details: detailsResp{
			ActualWidth:        report.Details.ActualWidth,
			ActualHeight:       report.Details.ActualHeight,
			RequiredMinWidth:   report.Details.RequiredMinWidth,
			RequiredMinHeight:  report.Details.RequiredMinHeight,
			IdealWidth:         report.Details.IdealWidth,
			IdealHeight:        report.Details.IdealHeight,
			AltTextLength:      report.Details.AltTextLength,
			AltTextMin:         report.Details.AltTextBand[0],
			AltTextMax:         report.Details.AltTextBand[1],
			Format:             report.Details.Format,
			EstimatedSizeBytes: report.Details.EstimatedSizeBytes,
			MaxFileSizeBytes:   report.Details.MaxFileSizeBytes,
		},
	}
}

func (h *handler) newPlatformsResp(specs []compliance.PlatformSpec) platformsResp {
	resp := platformsResp{Platforms: make([]platformSpecResp, len(specs))}
	for i, s := range specs {
		resp.Platforms[i] = platformSpecResp{
			Key:              s.Key,
			Name:             s.Name,
			MinWidth:         s.MinWidth,
			MinHeight:        s.MinHeight,
			IdealWidth:       s.IdealWidth,
			IdealHeight:      s.IdealHeight,
			AcceptedFormats:  s.AcceptedFormats,
			PreferredFormats: s.PreferredFormats,
			AltTextMin:       s.AltTextMin,
			AltTextMax:       s.AltTextMax,
			MaxFileSizeBytes: s.MaxFileSizeBytes,
		}
	}
	return resp
}
