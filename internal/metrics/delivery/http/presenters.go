package http

import (
	"image-insights-srv/internal/metrics"
)

// =====================================================
// Request DTOs
// =====================================================

type performanceReq struct {
	ImageID           string  `json:"image_id" binding:"required"`
	LCPMs             float64 `json:"lcp_ms"`
	CLS               float64 `json:"cls"`
	INPMs             float64 `json:"inp_ms"`
	LoadTimeMs        int64   `json:"load_time_ms"`
	RenderTimeMs      int64   `json:"render_time_ms"`
	DecodeTimeMs      int64   `json:"decode_time_ms"`
	TransferSizeBytes int64   `json:"transfer_size_bytes"`
	Width             int     `json:"width"`
	Height            int     `json:"height"`
	Format            string  `json:"format"`
}

func (r performanceReq) toInput() metrics.PerformanceSample {
	return metrics.PerformanceSample{
		ImageID:           r.ImageID,
		LCPMs:             r.LCPMs,
		CLS:               r.CLS,
		INPMs:             r.INPMs,
		LoadTimeMs:        r.LoadTimeMs,
		RenderTimeMs:      r.RenderTimeMs,
		DecodeTimeMs:      r.DecodeTimeMs,
		TransferSizeBytes: r.TransferSizeBytes,
		Width:             r.Width,
		Height:            r.Height,
		Format:            r.Format,
	}
}

type seoImpactReq struct {
	ImageID               string  `json:"image_id" binding:"required"`
	Impressions           int64   `json:"impressions"`
	Clicks                int64   `json:"clicks"`
	AvgRank               float64 `json:"avg_rank"`
	MetadataQuality       float64 `json:"metadata_quality"`
	TechnicalOptimization float64 `json:"technical_optimization"`
	SchemaPresence        float64 `json:"schema_presence"`
	ContentRelevance      float64 `json:"content_relevance"`
}

func (r seoImpactReq) toInput() metrics.SearchMetrics {
	return metrics.SearchMetrics{
		ImageID:               r.ImageID,
		Impressions:           r.Impressions,
		Clicks:                r.Clicks,
		AvgRank:               r.AvgRank,
		MetadataQuality:       r.MetadataQuality,
		TechnicalOptimization: r.TechnicalOptimization,
		SchemaPresence:        r.SchemaPresence,
		ContentRelevance:      r.ContentRelevance,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type performanceResp struct {
	ImageID       string          `json:"image_id"`
	CoreWebVitals coreWebVitals   `json:"core_web_vitals"`
	Timings       timingsResp     `json:"timings"`
	Compression   compressionResp `json:"compression"`
	QualityScore  float64         `json:"quality_score"`
	Grade         string          `json:"grade"`
}

type coreWebVitals struct {
	LCP vitalsEntryResp `json:"lcp"`
	CLS vitalsEntryResp `json:"cls"`
	INP vitalsEntryResp `json:"inp"`
}

type vitalsEntryResp struct {
	Observed    float64 `json:"observed"`
	Baseline    float64 `json:"baseline"`
	Improvement float64 `json:"improvement"`
}

type timingsResp struct {
	LoadTimeMs   int64 `json:"load_time_ms"`
	RenderTimeMs int64 `json:"render_time_ms"`
	DecodeTimeMs int64 `json:"decode_time_ms"`
}

type compressionResp struct {
	OriginalEstimateBytes int64   `json:"original_estimate_bytes"`
	TransferSizeBytes     int64   `json:"transfer_size_bytes"`
	Ratio                 float64 `json:"ratio"`
}

type seoImpactResp struct {
	ImageID                  string        `json:"image_id"`
	Score                    float64       `json:"score"`
	SubScores                subScoresResp `json:"sub_scores"`
	CurrentCTR               float64       `json:"current_ctr"`
	ProjectedCTR             float64       `json:"projected_ctr"`
	EstimatedTrafficIncrease float64       `json:"estimated_traffic_increase"`
}

type subScoresResp struct {
	MetadataQuality       float64 `json:"metadata_quality"`
	TechnicalOptimization float64 `json:"technical_optimization"`
	SchemaPresence        float64 `json:"schema_presence"`
	ContentRelevance      float64 `json:"content_relevance"`
}

func (h *handler) newPerformanceResp(m metrics.PerformanceMetrics) performanceResp {
	return performanceResp{
		ImageID: m.ImageID,
		CoreWebVitals: coreWebVitals{
			LCP: newVitalsEntryResp(m.CoreWebVitals.LCP),
			CLS: newVitalsEntryResp(m.CoreWebVitals.CLS),
			INP: newVitalsEntryResp(m.CoreWebVitals.INP),
		},
		Timings: timingsResp{
			LoadTimeMs:   m.Timings.LoadTimeMs,
			RenderTimeMs: m.Timings.RenderTimeMs,
			DecodeTimeMs: m.Timings.DecodeTimeMs,
		},
		Compression: compressionResp{
			OriginalEstimateBytes: m.Compression.OriginalEstimateBytes,
			TransferSizeBytes:     m.Compression.TransferSizeBytes,
			Ratio:                 m.Compression.Ratio,
		},
		QualityScore: m.QualityScore,
		Grade:        m.Grade,
	}
}

func newVitalsEntryResp(e metrics.VitalsEntry) vitalsEntryResp {
	return vitalsEntryResp{
		Observed:    e.Observed,
		Baseline:    e.Baseline,
		Improvement: e.Improvement,
	}
}

func (h *handler) newSEOImpactResp(impact metrics.SEOImpact) seoImpactResp {
	return seoImpactResp{
		ImageID: impact.ImageID,
		Score:   impact.Score,
		SubScores: subScoresResp{
			MetadataQuality:       impact.SubScores.MetadataQuality,
			TechnicalOptimization: impact.SubScores.TechnicalOptimization,
			SchemaPresence:        impact.SubScores.SchemaPresence,
			ContentRelevance:      impact.SubScores.ContentRelevance,
		},
		CurrentCTR:               impact.CurrentCTR,
		ProjectedCTR:             impact.ProjectedCTR,
		EstimatedTrafficIncrease: impact.EstimatedTrafficIncrease,
	}
}
