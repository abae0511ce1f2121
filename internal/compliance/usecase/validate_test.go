package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"image-insights-srv/internal/compliance"
	"image-insights-srv/internal/model"
	"image-insights-srv/pkg/log"
)

func testValidator() compliance.UseCase {
	logger := log.Init(log.ZapConfig{Level: "fatal"})
	return New(logger, DefaultConfig())
}

func descriptor(width, height int, format, altText string) model.ImageDescriptor {
	return model.ImageDescriptor{
		ProductID: "p-1",
		View:      "front",
		Width:     width,
		Height:    height,
		Format:    format,
		AltText:   altText,
	}
}

func TestValidate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("minimum jpeg with short alt text", func(t *testing.T) {
		uc := testValidator()

		report, err := uc.Validate(ctx, sc, compliance.ValidateInput{
			Descriptor: descriptor(1200, 1200, model.FormatJPEG, "x"),
			Platform:   compliance.PlatformGoogleLens,
		})
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}

		// 35*0.8 + 25*0.6 + 25*0.4 + 15 = 68
		if report.Score != 68 {
			t.Errorf("Score mismatch: got %.1f, want 68", report.Score)
		}
		if report.Status != compliance.StatusAcceptable {
			t.Errorf("Status mismatch: got %s, want %s", report.Status, compliance.StatusAcceptable)
		}
		if report.Checks.AltText {
			t.Error("Alt text check should fail for out-of-band length")
		}
		if !report.Checks.Dimension || !report.Checks.Format || !report.Checks.FileSize {
			t.Errorf("Dimension, format and file size checks should pass: %+v", report.Checks)
		}

		foundAltRec := false
		for _, rec := range report.Recommendations {
			if strings.Contains(rec, "alt text") {
				foundAltRec = true
			}
		}
		if !foundAltRec {
			t.Errorf("Expected an alt text recommendation, got %v", report.Recommendations)
		}
	})

	t.Run("ideal webp scores excellent", func(t *testing.T) {
		uc := testValidator()

		altText := strings.Repeat("a", 60)
		report, err := uc.Validate(ctx, sc, compliance.ValidateInput{
			Descriptor: descriptor(2400, 2400, model.FormatWebP, altText),
			Platform:   compliance.PlatformGoogleLens,
		})
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}

		if report.Score != 100 {
			t.Errorf("Score mismatch: got %.1f, want 100", report.Score)
		}
		if report.Status != compliance.StatusExcellent {
			t.Errorf("Status mismatch: got %s, want %s", report.Status, compliance.StatusExcellent)
		}
		if len(report.Recommendations) != 0 {
			t.Errorf("Expected no recommendations, got %v", report.Recommendations)
		}
	})

	t.Run("recommendations follow check order", func(t *testing.T) {
		uc := testValidator()

		// Below minimum, unaccepted format, no alt text
		report, err := uc.Validate(ctx, sc, compliance.ValidateInput{
			Descriptor: descriptor(400, 400, model.FormatGIF, ""),
			Platform:   compliance.PlatformGoogleLens,
		})
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}

		if len(report.Recommendations) < 3 {
			t.Fatalf("Expected at least 3 recommendations, got %v", report.Recommendations)
		}
		if !strings.Contains(report.Recommendations[0], "dimensions") {
			t.Errorf("First recommendation should address dimensions: %q", report.Recommendations[0])
		}
		if !strings.Contains(report.Recommendations[1], "Format") {
			t.Errorf("Second recommendation should address format: %q", report.Recommendations[1])
		}
		if !strings.Contains(report.Recommendations[2], "alt text") {
			t.Errorf("Third recommendation should address alt text: %q", report.Recommendations[2])
		}
	})

	t.Run("dimension score monotone in size", func(t *testing.T) {
		uc := testValidator()

		altText := strings.Repeat("a", 60)
		previous := -1.0
		for _, size := range []int{1200, 1500, 1800, 2100, 2400, 3000} {
			report, err := uc.Validate(ctx, sc, compliance.ValidateInput{
				Descriptor: descriptor(size, size, model.FormatWebP, altText),
				Platform:   compliance.PlatformGoogleLens,
			})
			if err != nil {
				t.Fatalf("Validate failed at %d: %v", size, err)
			}
			if report.Score < previous {
				t.Errorf("Score decreased at %d: %.2f < %.2f", size, report.Score, previous)
			}
			previous = report.Score
		}
	})

	t.Run("score stays in range", func(t *testing.T) {
		uc := testValidator()

		inputs := []model.ImageDescriptor{
			descriptor(1, 1, model.FormatGIF, ""),
			descriptor(600, 900, model.FormatJPEG, strings.Repeat("a", 40)),
			descriptor(10000, 10000, model.FormatAVIF, strings.Repeat("a", 60)),
		}
		for _, d := range inputs {
			for _, platform := range []string{compliance.PlatformGoogleLens, compliance.PlatformPinterest} {
				report, err := uc.Validate(ctx, sc, compliance.ValidateInput{Descriptor: d, Platform: platform})
				if err != nil {
					t.Fatalf("Validate failed: %v", err)
				}
				if report.Score < 0 || report.Score > 100 {
					t.Errorf("Score out of range on %s: %.2f", platform, report.Score)
				}
			}
		}
	})

	t.Run("unknown platform rejected", func(t *testing.T) {
		uc := testValidator()

		_, err := uc.Validate(ctx, sc, compliance.ValidateInput{
			Descriptor: descriptor(1200, 1200, model.FormatJPEG, "alt"),
			Platform:   "instagram",
		})
		if !errors.Is(err, compliance.ErrUnknownPlatform) {
			t.Errorf("Expected ErrUnknownPlatform, got %v", err)
		}
	})

	t.Run("invalid dimensions rejected", func(t *testing.T) {
		uc := testValidator()

		_, err := uc.Validate(ctx, sc, compliance.ValidateInput{
			Descriptor: descriptor(0, 1200, model.FormatJPEG, "alt"),
			Platform:   compliance.PlatformGoogleLens,
		})
		if !errors.Is(err, compliance.ErrInvalidDimensions) {
			t.Errorf("Expected ErrInvalidDimensions, got %v", err)
		}
	})
}

func TestStatusForScore(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{100, compliance.StatusExcellent},
		{90, compliance.StatusExcellent},
		{89.9, compliance.StatusGood},
		{75, compliance.StatusGood},
		{74.9, compliance.StatusAcceptable},
		{60, compliance.StatusAcceptable},
		{59.9, compliance.StatusNeedsImprovement},
		{0, compliance.StatusNeedsImprovement},
	}

	for _, c := range cases {
		if got := statusForScore(c.score); got != c.want {
			t.Errorf("statusForScore(%.1f) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestPlatforms(t *testing.T) {
	uc := testValidator()

	specs := uc.Platforms(context.Background())
	if len(specs) != 2 {
		t.Fatalf("Expected 2 platforms, got %d", len(specs))
	}

	// Stable key order
	if specs[0].Key != compliance.PlatformGoogleLens || specs[1].Key != compliance.PlatformPinterest {
		t.Errorf("Unexpected platform order: %s, %s", specs[0].Key, specs[1].Key)
	}
}
