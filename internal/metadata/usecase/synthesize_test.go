package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"image-insights-srv/internal/metadata"
	"image-insights-srv/internal/model"
	"image-insights-srv/pkg/log"
	"image-insights-srv/pkg/util"
)

func testSynthesizer() metadata.UseCase {
	logger := log.Init(log.ZapConfig{Level: "fatal"})
	clock := util.FixedClock{Instant: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)}
	return New(nil, clock, logger, DefaultConfig())
}

func testInput() metadata.SynthesizeInput {
	return metadata.SynthesizeInput{
		Descriptor: model.ImageDescriptor{
			ProductID: "123",
			View:      "front",
			Width:     2400,
			Height:    3000,
			Format:    model.FormatWebP,
			AltText:   "Aurora table lamp with walnut base, front view",
		},
		Product: model.ProductContext{
			ProductName: "Aurora Table Lamp",
			Description: "Dimmable table lamp with a walnut base",
			Category:    "lighting",
			Tags:        []string{"lamp", "walnut", "dimmable"},
			Brand:       "Northlight",
			Creator:     "Northlight Studio",
			LicenseType: metadata.LicenseProprietary,
			PriceCents:  12900,
			Currency:    "USD",
			InStock:     true,
		},
	}
}

func TestSynthesize(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1", SessionID: "s1"}

	t.Run("id based filename", func(t *testing.T) {
		uc := testSynthesizer()

		out, err := uc.Synthesize(ctx, sc, testInput())
		if err != nil {
			t.Fatalf("Synthesize failed: %v", err)
		}

		want := "123-front-2400x3000.webp"
		if out.Filenames.IDBased != want {
			t.Errorf("IDBased mismatch: got %s, want %s", out.Filenames.IDBased, want)
		}
		if out.Filenames.CDNPath != "/images/products/123/"+want {
			t.Errorf("CDNPath mismatch: got %s", out.Filenames.CDNPath)
		}
	})

	t.Run("aspect ratio bucket", func(t *testing.T) {
		uc := testSynthesizer()

		out, err := uc.Synthesize(ctx, sc, testInput())
		if err != nil {
			t.Fatalf("Synthesize failed: %v", err)
		}

		// 2400x3000 reduces to 4:5
		if out.Filenames.AspectRatio != "portrait" {
			t.Errorf("AspectRatio mismatch: got %s, want portrait", out.Filenames.AspectRatio)
		}
	})

	t.Run("deterministic for fixed clock", func(t *testing.T) {
		uc := testSynthesizer()

		first, err := uc.Synthesize(ctx, sc, testInput())
		if err != nil {
			t.Fatalf("Synthesize failed: %v", err)
		}
		second, err := uc.Synthesize(ctx, sc, testInput())
		if err != nil {
			t.Fatalf("Synthesize failed: %v", err)
		}

		if !reflect.DeepEqual(first, second) {
			t.Error("Outputs differ across identical invocations")
		}
	})

	t.Run("missing view rejected", func(t *testing.T) {
		uc := testSynthesizer()

		input := testInput()
		input.Descriptor.View = ""

		_, err := uc.Synthesize(ctx, sc, input)
		if !errors.Is(err, metadata.ErrMissingField) {
			t.Errorf("Expected ErrMissingField, got %v", err)
		}

		var fieldErr *metadata.FieldError
		if !errors.As(err, &fieldErr) || fieldErr.Field != "view" {
			t.Errorf("Expected field error naming view, got %v", err)
		}
	})

	t.Run("unknown format rejected", func(t *testing.T) {
		uc := testSynthesizer()

		input := testInput()
		input.Descriptor.Format = "tiff"

		if _, err := uc.Synthesize(ctx, sc, input); !errors.Is(err, metadata.ErrUnknownFormat) {
			t.Errorf("Expected ErrUnknownFormat, got %v", err)
		}
	})

	t.Run("unknown license rejected", func(t *testing.T) {
		uc := testSynthesizer()

		input := testInput()
		input.Product.LicenseType = "public-domain"

		if _, err := uc.Synthesize(ctx, sc, input); !errors.Is(err, metadata.ErrUnknownLicense) {
			t.Errorf("Expected ErrUnknownLicense, got %v", err)
		}
	})
}

func TestCopyrightUsageRights(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1", SessionID: "s1"}

	t.Run("cc0 grants free use without attribution", func(t *testing.T) {
		uc := testSynthesizer()

		input := testInput()
		input.Product.LicenseType = metadata.LicenseCC0

		out, err := uc.Synthesize(ctx, sc, input)
		if err != nil {
			t.Fatalf("Synthesize failed: %v", err)
		}

		usage := out.Copyright.Usage
		if !usage.CanUseCommercially || !usage.CanModify || !usage.CanRedistribute {
			t.Errorf("cc0 should permit commercial use, modification and redistribution: %+v", usage)
		}
		if usage.NeedsAttribution {
			t.Error("cc0 should not require attribution")
		}
		if out.Copyright.AttributionText != "" {
			t.Errorf("cc0 attribution should be empty, got %q", out.Copyright.AttributionText)
		}
	})

	t.Run("proprietary reserves all rights", func(t *testing.T) {
		uc := testSynthesizer()

		out, err := uc.Synthesize(ctx, sc, testInput())
		if err != nil {
			t.Fatalf("Synthesize failed: %v", err)
		}

		usage := out.Copyright.Usage
		if usage.CanUseCommercially || usage.CanModify || usage.CanRedistribute {
			t.Errorf("proprietary should reserve all rights: %+v", usage)
		}
		if !usage.NeedsAttribution {
			t.Error("proprietary should require attribution")
		}
		if out.Copyright.AttributionText == "" {
			t.Error("proprietary attribution should not be empty")
		}
	})

	t.Run("statement carries clock year", func(t *testing.T) {
		uc := testSynthesizer()

		out, err := uc.Synthesize(ctx, sc, testInput())
		if err != nil {
			t.Fatalf("Synthesize failed: %v", err)
		}

		want := "© 2026 Northlight Studio"
		if len(out.Copyright.Statement) < len(want) || out.Copyright.Statement[:len(want)] != want {
			t.Errorf("Statement should start with %q, got %q", want, out.Copyright.Statement)
		}
	})
}

func TestExtractKeywords(t *testing.T) {
	uc := testSynthesizer().(*implUseCase)

	t.Run("dedupes preserving first occurrence", func(t *testing.T) {
		product := model.ProductContext{
			ProductName: "Aurora Lamp",
			Category:    "lighting",
			Tags:        []string{"lamp", "aurora", "walnut"},
			Brand:       "Northlight",
		}

		keywords := uc.extractKeywords(product)

		seen := map[string]int{}
		for _, k := range keywords {
			seen[k]++
			if seen[k] > 1 {
				t.Errorf("Keyword %q appears more than once", k)
			}
		}

		if len(keywords) == 0 || keywords[0] != "aurora" {
			t.Errorf("First keyword should come from the product name, got %v", keywords)
		}
	})

	t.Run("caps at configured maximum", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxKeywords = 3
		logger := log.Init(log.ZapConfig{Level: "fatal"})
		capped := New(nil, util.FixedClock{Instant: time.Unix(0, 0)}, logger, cfg).(*implUseCase)

		product := model.ProductContext{
			ProductName: "one two three four five six",
		}

		if keywords := capped.extractKeywords(product); len(keywords) > 3 {
			t.Errorf("Expected at most 3 keywords, got %d", len(keywords))
		}
	})
}
