package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"image-insights-srv/internal/metrics"
	"image-insights-srv/internal/model"
	"image-insights-srv/pkg/log"
)

func testAnalyzer() metrics.UseCase {
	logger := log.Init(log.ZapConfig{Level: "fatal"})
	return New(logger, DefaultConfig())
}

func sample() metrics.PerformanceSample {
	return metrics.PerformanceSample{
		ImageID:           "img-1",
		LCPMs:             2100,
		CLS:               0.1,
		INPMs:             250,
		LoadTimeMs:        800,
		RenderTimeMs:      120,
		DecodeTimeMs:      40,
		TransferSizeBytes: 180_000,
		Width:             2400,
		Height:            2400,
		Format:            model.FormatWebP,
	}
}

func TestComputePerformance(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("improvement over baseline", func(t *testing.T) {
		uc := testAnalyzer()

		out, err := uc.ComputePerformance(ctx, sc, sample())
		if err != nil {
			t.Fatalf("ComputePerformance failed: %v", err)
		}

		// (4000-2100)/4000*100 = 47.5
		if math.Abs(out.CoreWebVitals.LCP.Improvement-47.5) > 1e-9 {
			t.Errorf("LCP improvement mismatch: got %.2f, want 47.5", out.CoreWebVitals.LCP.Improvement)
		}
		if out.CoreWebVitals.LCP.Baseline != 4000 {
			t.Errorf("LCP baseline mismatch: got %.1f", out.CoreWebVitals.LCP.Baseline)
		}
	})

	t.Run("regression floors at zero", func(t *testing.T) {
		uc := testAnalyzer()

		input := sample()
		input.LCPMs = 6000
		out, err := uc.ComputePerformance(ctx, sc, input)
		if err != nil {
			t.Fatalf("ComputePerformance failed: %v", err)
		}

		if out.CoreWebVitals.LCP.Improvement != 0 {
			t.Errorf("Regression should floor at 0, got %.2f", out.CoreWebVitals.LCP.Improvement)
		}
	})

	t.Run("compression ratio against rgb estimate", func(t *testing.T) {
		uc := testAnalyzer()

		out, err := uc.ComputePerformance(ctx, sc, sample())
		if err != nil {
			t.Fatalf("ComputePerformance failed: %v", err)
		}

		original := int64(2400) * 2400 * 3
		if out.Compression.OriginalEstimateBytes != original {
			t.Errorf("Original estimate mismatch: got %d, want %d", out.Compression.OriginalEstimateBytes, original)
		}
		want := float64(original-180_000) / float64(original) * 100
		if math.Abs(out.Compression.Ratio-want) > 1e-9 {
			t.Errorf("Compression ratio mismatch: got %.4f, want %.4f", out.Compression.Ratio, want)
		}
	})

	t.Run("quality score in range", func(t *testing.T) {
		uc := testAnalyzer()

		out, err := uc.ComputePerformance(ctx, sc, sample())
		if err != nil {
			t.Fatalf("ComputePerformance failed: %v", err)
		}
		if out.QualityScore < 0 || out.QualityScore > 100 {
			t.Errorf("QualityScore out of range: %.2f", out.QualityScore)
		}
		if out.Grade == "" {
			t.Error("Grade should be assigned")
		}
	})

	t.Run("negative vital rejected with field", func(t *testing.T) {
		uc := testAnalyzer()

		input := sample()
		input.LCPMs = -1
		_, err := uc.ComputePerformance(ctx, sc, input)
		if !errors.Is(err, metrics.ErrInvalidSample) {
			t.Fatalf("Expected ErrInvalidSample, got %v", err)
		}

		var fieldErr *metrics.FieldError
		if !errors.As(err, &fieldErr) || fieldErr.Field != "lcp_ms" {
			t.Errorf("Expected field error naming lcp_ms, got %v", err)
		}
	})
}

func TestGradeForScore(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{95, metrics.GradeA},
		{90, metrics.GradeB},
		{80, metrics.GradeB},
		{65, metrics.GradeC},
		{45, metrics.GradeD},
		{10, metrics.GradeF},
		{0, metrics.GradeF},
	}

	for _, c := range cases {
		if got := gradeForScore(c.score); got != c.want {
			t.Errorf("gradeForScore(%.1f) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestComputeSEOImpact(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("perfect sub scores reach 100", func(t *testing.T) {
		uc := testAnalyzer()

		out, err := uc.ComputeSEOImpact(ctx, sc, metrics.SearchMetrics{
			ImageID:               "img-1",
			Impressions:           10_000,
			Clicks:                500,
			AvgRank:               3.2,
			MetadataQuality:       100,
			TechnicalOptimization: 100,
			SchemaPresence:        100,
			ContentRelevance:      100,
		})
		if err != nil {
			t.Fatalf("ComputeSEOImpact failed: %v", err)
		}

		if out.Score != 100 {
			t.Errorf("Score mismatch: got %.2f, want 100", out.Score)
		}
		if math.Abs(out.CurrentCTR-0.05) > 1e-9 {
			t.Errorf("CurrentCTR mismatch: got %.4f, want 0.05", out.CurrentCTR)
		}
		if out.ProjectedCTR <= out.CurrentCTR {
			t.Errorf("ProjectedCTR should exceed CurrentCTR: %.4f vs %.4f", out.ProjectedCTR, out.CurrentCTR)
		}
		if out.EstimatedTrafficIncrease <= 0 {
			t.Errorf("Expected positive traffic increase, got %.4f", out.EstimatedTrafficIncrease)
		}
	})

	t.Run("zero clicks yields zero projection", func(t *testing.T) {
		uc := testAnalyzer()

		out, err := uc.ComputeSEOImpact(ctx, sc, metrics.SearchMetrics{
			ImageID:         "img-1",
			Impressions:     1000,
			Clicks:          0,
			MetadataQuality: 80,
			SchemaPresence:  80,
		})
		if err != nil {
			t.Fatalf("ComputeSEOImpact failed: %v", err)
		}

		if out.CurrentCTR != 0 || out.ProjectedCTR != 0 || out.EstimatedTrafficIncrease != 0 {
			t.Errorf("Zero clicks should project nothing: %+v", out)
		}
	})

	t.Run("clicks above impressions rejected", func(t *testing.T) {
		uc := testAnalyzer()

		_, err := uc.ComputeSEOImpact(ctx, sc, metrics.SearchMetrics{
			ImageID:     "img-1",
			Impressions: 10,
			Clicks:      20,
		})
		if !errors.Is(err, metrics.ErrInvalidSearchMetrics) {
			t.Fatalf("Expected ErrInvalidSearchMetrics, got %v", err)
		}

		var fieldErr *metrics.FieldError
		if !errors.As(err, &fieldErr) || fieldErr.Field != "clicks" {
			t.Errorf("Expected field error naming clicks, got %v", err)
		}
	})

	t.Run("sub score out of range rejected", func(t *testing.T) {
		uc := testAnalyzer()

		_, err := uc.ComputeSEOImpact(ctx, sc, metrics.SearchMetrics{
			ImageID:         "img-1",
			Impressions:     100,
			Clicks:          5,
			MetadataQuality: 120,
		})
		if !errors.Is(err, metrics.ErrInvalidSearchMetrics) {
			t.Fatalf("Expected ErrInvalidSearchMetrics, got %v", err)
		}

		var fieldErr *metrics.FieldError
		if !errors.As(err, &fieldErr) || fieldErr.Field != "metadata_quality" {
			t.Errorf("Expected field error naming metadata_quality, got %v", err)
		}
	})
}
