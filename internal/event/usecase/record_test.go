package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"image-insights-srv/internal/event"
	"image-insights-srv/internal/model"
	"image-insights-srv/pkg/log"
	"image-insights-srv/pkg/util"
)

func testRecorder() event.UseCase {
	logger := log.Init(log.ZapConfig{Level: "fatal"})
	clock := util.FixedClock{Instant: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)}
	return New(nil, nil, clock, logger, DefaultConfig())
}

func recordInput() event.RecordInput {
	return event.RecordInput{
		EventType:  model.EventTypeView,
		ImageID:    "img-1",
		DeviceType: model.DeviceDesktop,
		Position:   event.PositionAboveFold,
		DurationMs: 5000,
	}
}

func TestRecord(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1", SessionID: "s1"}

	t.Run("full weight event scores 100", func(t *testing.T) {
		uc := testRecorder()

		e, err := uc.Record(ctx, sc, event.RecordInput{
			EventType:       model.EventTypeDownload,
			ImageID:         "img-1",
			DeviceType:      model.DeviceDesktop,
			InteractionKind: event.InteractionDownload,
			Position:        event.PositionAboveFold,
			DurationMs:      10_000,
		})
		if err != nil {
			t.Fatalf("Record failed: %v", err)
		}

		if e.EngagementScore != 100 {
			t.Errorf("EngagementScore mismatch: got %.2f, want 100", e.EngagementScore)
		}
		if e.ID == "" {
			t.Error("Event should be assigned an ID")
		}
		if e.SessionID != "s1" {
			t.Errorf("SessionID mismatch: got %s", e.SessionID)
		}
	})

	t.Run("duration factor caps at reference", func(t *testing.T) {
		uc := testRecorder()

		input := recordInput()
		input.DurationMs = 10_000
		atRef, err := uc.Record(ctx, sc, input)
		if err != nil {
			t.Fatalf("Record failed: %v", err)
		}

		input.DurationMs = 600_000
		beyond, err := uc.Record(ctx, sc, input)
		if err != nil {
			t.Fatalf("Record failed: %v", err)
		}

		if atRef.EngagementScore != beyond.EngagementScore {
			t.Errorf("Duration beyond reference should not raise the score: %.2f vs %.2f",
				atRef.EngagementScore, beyond.EngagementScore)
		}
	})

	t.Run("score bounded for zero duration", func(t *testing.T) {
		uc := testRecorder()

		input := recordInput()
		input.DurationMs = 0
		e, err := uc.Record(ctx, sc, input)
		if err != nil {
			t.Fatalf("Record failed: %v", err)
		}

		if e.EngagementScore < 0 || e.EngagementScore > 100 {
			t.Errorf("EngagementScore out of range: %.2f", e.EngagementScore)
		}
	})

	t.Run("insertion order preserved on timestamp ties", func(t *testing.T) {
		uc := testRecorder()

		var ids []string
		for i := 0; i < 5; i++ {
			e, err := uc.Record(ctx, sc, recordInput())
			if err != nil {
				t.Fatalf("Record failed: %v", err)
			}
			ids = append(ids, e.ID)
		}

		snapshot := uc.Snapshot(ctx, sc)
		if len(snapshot) != 5 {
			t.Fatalf("Snapshot length mismatch: got %d, want 5", len(snapshot))
		}
		for i, e := range snapshot {
			if e.ID != ids[i] {
				t.Errorf("Event %d out of order: got %s, want %s", i, e.ID, ids[i])
			}
			if !e.Timestamp.Equal(snapshot[0].Timestamp) {
				t.Errorf("Fixed clock should produce equal timestamps")
			}
		}
	})

	t.Run("oldest evicted past the cap", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxEvents = 3
		logger := log.Init(log.ZapConfig{Level: "fatal"})
		uc := New(nil, nil, util.FixedClock{Instant: time.Unix(0, 0)}, logger, cfg)

		var ids []string
		for i := 0; i < 5; i++ {
			e, err := uc.Record(ctx, sc, recordInput())
			if err != nil {
				t.Fatalf("Record failed: %v", err)
			}
			ids = append(ids, e.ID)
		}

		snapshot := uc.Snapshot(ctx, sc)
		if len(snapshot) != 3 {
			t.Fatalf("Snapshot length mismatch: got %d, want 3", len(snapshot))
		}
		for i, e := range snapshot {
			if e.ID != ids[i+2] {
				t.Errorf("Event %d mismatch after eviction: got %s, want %s", i, e.ID, ids[i+2])
			}
		}
	})

	t.Run("unknown event type rejected", func(t *testing.T) {
		uc := testRecorder()

		input := recordInput()
		input.EventType = "scroll"
		if _, err := uc.Record(ctx, sc, input); !errors.Is(err, event.ErrUnknownEventType) {
			t.Errorf("Expected ErrUnknownEventType, got %v", err)
		}
	})

	t.Run("missing image id rejected", func(t *testing.T) {
		uc := testRecorder()

		input := recordInput()
		input.ImageID = ""
		if _, err := uc.Record(ctx, sc, input); !errors.Is(err, event.ErrMissingImageID) {
			t.Errorf("Expected ErrMissingImageID, got %v", err)
		}
	})

	t.Run("negative duration rejected", func(t *testing.T) {
		uc := testRecorder()

		input := recordInput()
		input.DurationMs = -1
		if _, err := uc.Record(ctx, sc, input); !errors.Is(err, event.ErrInvalidDuration) {
			t.Errorf("Expected ErrInvalidDuration, got %v", err)
		}
	})

	t.Run("unknown interaction kind rejected", func(t *testing.T) {
		uc := testRecorder()

		input := recordInput()
		input.InteractionKind = "pinch"
		if _, err := uc.Record(ctx, sc, input); !errors.Is(err, event.ErrUnknownInteraction) {
			t.Errorf("Expected ErrUnknownInteraction, got %v", err)
		}
	})
}

func TestFlush(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1", SessionID: "s1"}
	uc := testRecorder()

	for i := 0; i < 4; i++ {
		if _, err := uc.Record(ctx, sc, recordInput()); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	dropped, err := uc.Flush(ctx, sc)
	if err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if dropped != 4 {
		t.Errorf("Dropped count mismatch: got %d, want 4", dropped)
	}

	if snapshot := uc.Snapshot(ctx, sc); len(snapshot) != 0 {
		t.Errorf("Snapshot should be empty after flush, got %d events", len(snapshot))
	}

	// Flushing an empty session is a no-op
	dropped, err = uc.Flush(ctx, sc)
	if err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if dropped != 0 {
		t.Errorf("Dropped count mismatch on empty session: got %d, want 0", dropped)
	}
}

func TestSessionIsolation(t *testing.T) {
	ctx := context.Background()
	uc := testRecorder()

	first := model.Scope{UserID: "u1", SessionID: "s1"}
	second := model.Scope{UserID: "u2", SessionID: "s2"}

	if _, err := uc.Record(ctx, first, recordInput()); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if snapshot := uc.Snapshot(ctx, second); len(snapshot) != 0 {
		t.Errorf("Sessions should not share logs, got %d events", len(snapshot))
	}
}
