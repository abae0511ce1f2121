package http

import (
	"encoding/json"

	"image-insights-srv/internal/model"
	"image-insights-srv/internal/report"
	"image-insights-srv/pkg/util"
)

// =====================================================
// Request DTOs
// =====================================================

type generateReq struct {
	Title     string `json:"title"`
	ImageID   string `json:"image_id,omitempty"`
	EventType string `json:"event_type,omitempty"`
	From      *int64 `json:"from,omitempty"`
	To        *int64 `json:"to,omitempty"`
}

func (r generateReq) toInput() report.GenerateInput {
	return report.GenerateInput{
		Title:   r.Title,
		Filters: toFilters(r.ImageID, r.EventType, r.From, r.To),
	}
}

type getReq struct {
	ID string
}

func (r getReq) toInput() report.GetInput {
	return report.GetInput{ID: r.ID}
}

func (r getReq) toDownloadInput() report.DownloadInput {
	return report.DownloadInput{ID: r.ID}
}

type exportReq struct {
	ImageID   string `json:"image_id,omitempty"`
	EventType string `json:"event_type,omitempty"`
	From      *int64 `json:"from,omitempty"`
	To        *int64 `json:"to,omitempty"`
}

func (r exportReq) toInput() report.ExportInput {
	return report.ExportInput{
		Filters: toFilters(r.ImageID, r.EventType, r.From, r.To),
	}
}

func toFilters(imageID, eventType string, from, to *int64) report.Filters {
	f := report.Filters{
		ImageID:   imageID,
		EventType: eventType,
	}
	if from != nil {
		t := util.MillisecondsToTime(*from)
		f.From = &t
	}
	if to != nil {
		t := util.MillisecondsToTime(*to)
		f.To = &t
	}
	return f
}

// =====================================================
// Response DTOs
// =====================================================

type reportRecordResp struct {
	ID               string          `json:"id"`
	ImageID          string          `json:"image_id,omitempty"`
	Title            string          `json:"title"`
	ParamsHash       string          `json:"params_hash"`
	Filters          json.RawMessage `json:"filters,omitempty"`
	Status           string          `json:"status"`
	ErrorMessage     string          `json:"error_message,omitempty"`
	FileURL          string          `json:"file_url,omitempty"`
	FileSizeBytes    int64           `json:"file_size_bytes"`
	FileFormat       string          `json:"file_format"`
	TotalEvents      int             `json:"total_events"`
	GenerationTimeMs int64           `json:"generation_time_ms"`
	CompletedAt      *int64          `json:"completed_at,omitempty"`
	CreatedAt        int64           `json:"created_at"`
	UpdatedAt        int64           `json:"updated_at"`
}

type summaryResp struct {
	TotalEvents     int            `json:"total_events"`
	Views           int            `json:"views"`
	Downloads       int            `json:"downloads"`
	Interactions    int            `json:"interactions"`
	UniqueImages    int            `json:"unique_images"`
	AvgEngagement   float64        `json:"avg_engagement"`
	AvgDurationMs   float64        `json:"avg_duration_ms"`
	AvgLoadTimeMs   float64        `json:"avg_load_time_ms"`
	DeviceBreakdown map[string]int `json:"device_breakdown"`
}

type generateResp struct {
	Report  reportRecordResp `json:"report"`
	Summary summaryResp      `json:"summary"`
}

type reportResp struct {
	Report  reportRecordResp `json:"report"`
	Summary *summaryResp     `json:"summary,omitempty"`
}

type downloadResp struct {
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at"`
}

func newReportRecordResp(rec model.Report) reportRecordResp {
	resp := reportRecordResp{
		ID:               rec.ID,
		ImageID:          rec.ImageID,
		Title:            rec.Title,
		ParamsHash:       rec.ParamsHash,
		Filters:          rec.Filters,
		Status:           rec.Status,
		ErrorMessage:     rec.ErrorMessage,
		FileURL:          rec.FileURL,
		FileSizeBytes:    rec.FileSizeBytes,
		FileFormat:       rec.FileFormat,
		TotalEvents:      rec.TotalEvents,
		GenerationTimeMs: rec.GenerationTimeMs,
		CreatedAt:        util.TimeToMilliseconds(rec.CreatedAt),
		UpdatedAt:        util.TimeToMilliseconds(rec.UpdatedAt),
	}
	if rec.CompletedAt != nil {
		ms := util.TimeToMilliseconds(*rec.CompletedAt)
		resp.CompletedAt = &ms
	}
	return resp
}

func newSummaryResp(s report.Summary) summaryResp {
	breakdown := s.DeviceBreakdown
	if breakdown == nil {
		breakdown = map[string]int{}
	}

	return summaryResp{
		TotalEvents:     s.TotalEvents,
		Views:           s.Views,
		Downloads:       s.Downloads,
		Interactions:    s.Interactions,
		UniqueImages:    s.UniqueImages,
		AvgEngagement:   s.AvgEngagement,
		AvgDurationMs:   s.AvgDurationMs,
		AvgLoadTimeMs:   s.AvgLoadTimeMs,
		DeviceBreakdown: breakdown,
	}
}

func (h *handler) newGenerateResp(out report.GenerateOutput) generateResp {
	return generateResp{
		Report:  newReportRecordResp(out.Report),
		Summary: newSummaryResp(out.Summary),
	}
}

func (h *handler) newGetResp(out report.GetOutput) reportResp {
	resp := reportResp{Report: newReportRecordResp(out.Report)}
	if out.Summary != nil {
		s := newSummaryResp(*out.Summary)
		resp.Summary = &s
	}
	return resp
}

func (h *handler) newDownloadResp(out report.DownloadOutput) downloadResp {
	return downloadResp{
		URL:       out.URL,
		ExpiresAt: util.TimeToMilliseconds(out.ExpiresAt),
	}
}
