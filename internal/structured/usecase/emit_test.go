package usecase

import (
	"context"
	"errors"
	"testing"

	"image-insights-srv/internal/model"
	"image-insights-srv/internal/structured"
	"image-insights-srv/pkg/log"
)

func testEmitter() structured.UseCase {
	logger := log.Init(log.ZapConfig{Level: "fatal"})
	return New(nil, logger, DefaultConfig())
}

func TestEmit(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("visual object document", func(t *testing.T) {
		uc := testEmitter()

		doc, err := uc.Emit(ctx, sc, structured.EmitInput{
			Kind: structured.KindVisualObject,
			Payload: map[string]interface{}{
				"url":      "https://cdn.example.com/images/products/123/123-front-2400x3000.webp",
				"name":     "Aurora Table Lamp, front view",
				"alt_text": "Aurora table lamp with walnut base",
				"width":    2400,
				"height":   3000,
			},
		})
		if err != nil {
			t.Fatalf("Emit failed: %v", err)
		}

		if doc.Kind != structured.KindVisualObject {
			t.Errorf("Kind mismatch: got %s", doc.Kind)
		}
		if doc.Data["@context"] != "https://schema.org" {
			t.Errorf("@context mismatch: got %v", doc.Data["@context"])
		}
		if doc.Data["@type"] != "ImageObject" {
			t.Errorf("@type mismatch: got %v", doc.Data["@type"])
		}
		if doc.Data["caption"] != "Aurora table lamp with walnut base" {
			t.Errorf("caption mismatch: got %v", doc.Data["caption"])
		}
		if _, ok := doc.Data["thumbnailUrl"]; ok {
			t.Error("Absent payload keys should not appear in the document")
		}
	})

	t.Run("commerce document with offer", func(t *testing.T) {
		uc := testEmitter()

		doc, err := uc.Emit(ctx, sc, structured.EmitInput{
			Kind: structured.KindCommerce,
			Payload: map[string]interface{}{
				"name":     "Aurora Table Lamp",
				"image":    "https://cdn.example.com/images/products/123/hero.webp",
				"brand":    "Northlight",
				"price":    129.00,
				"currency": "USD",
				"in_stock": true,
			},
		})
		if err != nil {
			t.Fatalf("Emit failed: %v", err)
		}

		if doc.Data["@type"] != "Product" {
			t.Errorf("@type mismatch: got %v", doc.Data["@type"])
		}

		brand, ok := doc.Data["brand"].(map[string]interface{})
		if !ok || brand["name"] != "Northlight" {
			t.Errorf("brand mismatch: %v", doc.Data["brand"])
		}

		offer, ok := doc.Data["offers"].(map[string]interface{})
		if !ok {
			t.Fatalf("offers missing: %v", doc.Data)
		}
		if offer["priceCurrency"] != "USD" {
			t.Errorf("priceCurrency mismatch: got %v", offer["priceCurrency"])
		}
		if offer["availability"] != "https://schema.org/InStock" {
			t.Errorf("availability mismatch: got %v", offer["availability"])
		}
	})

	t.Run("quality assessment rating bounds", func(t *testing.T) {
		uc := testEmitter()

		doc, err := uc.Emit(ctx, sc, structured.EmitInput{
			Kind: structured.KindQualityAssessment,
			Payload: map[string]interface{}{
				"image_id": "img-1",
				"platform": "google-lens",
				"score":    68.0,
			},
		})
		if err != nil {
			t.Fatalf("Emit failed: %v", err)
		}

		rating, ok := doc.Data["reviewRating"].(map[string]interface{})
		if !ok {
			t.Fatalf("reviewRating missing: %v", doc.Data)
		}
		if rating["ratingValue"] != 68.0 || rating["bestRating"] != 100 || rating["worstRating"] != 0 {
			t.Errorf("rating mismatch: %v", rating)
		}
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		uc := testEmitter()

		_, err := uc.Emit(ctx, sc, structured.EmitInput{
			Kind:    "breadcrumb",
			Payload: map[string]interface{}{"name": "x"},
		})
		if !errors.Is(err, structured.ErrUnknownKind) {
			t.Errorf("Expected ErrUnknownKind, got %v", err)
		}
	})

	t.Run("missing required field rejected", func(t *testing.T) {
		uc := testEmitter()

		_, err := uc.Emit(ctx, sc, structured.EmitInput{
			Kind:    structured.KindVisualObject,
			Payload: map[string]interface{}{"url": "https://cdn.example.com/x.webp"},
		})
		if !errors.Is(err, structured.ErrMissingField) {
			t.Fatalf("Expected ErrMissingField, got %v", err)
		}

		var fieldErr *structured.FieldError
		if !errors.As(err, &fieldErr) || fieldErr.Field != "name" {
			t.Errorf("Expected field error naming name, got %v", err)
		}
	})

	t.Run("empty string counts as missing", func(t *testing.T) {
		uc := testEmitter()

		_, err := uc.Emit(ctx, sc, structured.EmitInput{
			Kind:    structured.KindCopyright,
			Payload: map[string]interface{}{"name": "Lamp", "license": ""},
		})
		if !errors.Is(err, structured.ErrMissingField) {
			t.Errorf("Expected ErrMissingField, got %v", err)
		}
	})

	t.Run("unpublished without broker", func(t *testing.T) {
		uc := testEmitter()

		doc, err := uc.Emit(ctx, sc, structured.EmitInput{
			Kind:    structured.KindCopyright,
			Payload: map[string]interface{}{"name": "Lamp", "license": "cc-by"},
		})
		if err != nil {
			t.Fatalf("Emit failed: %v", err)
		}
		if doc.Published {
			t.Error("Document should not be marked published without a broker")
		}
	})
}

func TestBuilderCoverage(t *testing.T) {
	for kind := range structured.KnownKinds {
		if _, ok := builders[kind]; !ok {
			t.Errorf("Kind %s has no builder", kind)
		}
		if _, ok := requiredFields[kind]; !ok {
			t.Errorf("Kind %s has no required field list", kind)
		}
	}
}
