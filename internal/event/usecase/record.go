package usecase

import (
	"context"
	"encoding/json"

	"image-insights-srv/internal/event"
	"image-insights-srv/internal/event/repository"
	"image-insights-srv/internal/model"

	"github.com/google/uuid"
)

// Record validates, scores and appends one interaction event. Events are
// never merged or mutated after creation; wall-clock order with insertion
// order on ties.
func (uc *implUseCase) Record(ctx context.Context, sc model.Scope, input event.RecordInput) (model.AnalyticsEvent, error) {
	if err := uc.validateRecord(input); err != nil {
		uc.l.Warnf(ctx, "event.usecase.Record: invalid input: %v", err)
		return model.AnalyticsEvent{}, err
	}

	e := model.AnalyticsEvent{
		ID:              uuid.NewString(),
		SessionID:       sc.SessionID,
		Timestamp:       uc.clock.Now(),
		EventType:       input.EventType,
		ImageID:         input.ImageID,
		DeviceType:      input.DeviceType,
		DurationMs:      input.DurationMs,
		EngagementScore: uc.engagementScore(input),
		LoadTimeMs:      input.LoadTimeMs,
		Details:         input.Details,
	}

	uc.append(e)

	if uc.repo != nil {
		if _, err := uc.repo.CreateEvent(ctx, repository.CreateEventOptions{Event: e}); err != nil {
			uc.l.Errorf(ctx, "event.usecase.Record: persist failed: %v", err)
			return model.AnalyticsEvent{}, event.ErrPersistFailed
		}
	}

	uc.publish(ctx, e)

	uc.l.Infof(ctx, "event.usecase.Record: recorded %s event %s for image %s (engagement %.1f)",
		e.EventType, e.ID, e.ImageID, e.EngagementScore)

	return e, nil
}

func (uc *implUseCase) validateRecord(input event.RecordInput) error {
	switch input.EventType {
	case model.EventTypeView, model.EventTypeDownload, model.EventTypeInteraction:
	default:
		return event.ErrUnknownEventType
	}
	if input.ImageID == "" {
		return event.ErrMissingImageID
	}
	if input.DurationMs < 0 || input.LoadTimeMs < 0 {
		return event.ErrInvalidDuration
	}
	if input.InteractionKind != "" {
		if _, ok := uc.cfg.InteractionWeights[input.InteractionKind]; !ok {
			return event.ErrUnknownInteraction
		}
	}
	return nil
}

// append adds the event to the bounded session log, evicting oldest first
// past the cap. The mutex serializes concurrent recorders so timestamp
// order is preserved.
func (uc *implUseCase) append(e model.AnalyticsEvent) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	lg, ok := uc.logs[e.SessionID]
	if !ok {
		lg = &sessionLog{}
		uc.logs[e.SessionID] = lg
	}

	lg.events = append(lg.events, e)
	if uc.cfg.MaxEvents > 0 && len(lg.events) > uc.cfg.MaxEvents {
		overflow := len(lg.events) - uc.cfg.MaxEvents
		lg.events = append(lg.events[:0:0], lg.events[overflow:]...)
	}
}

// publish forwards the event to the stream for downstream consumers.
// Best effort; the log and the database remain authoritative.
func (uc *implUseCase) publish(ctx context.Context, e model.AnalyticsEvent) {
	if uc.producer == nil {
		return
	}

	body, err := json.Marshal(e)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.publish: marshal failed: %v", err)
		return
	}

	if err := uc.producer.Publish([]byte(e.ImageID), body); err != nil {
		uc.l.Errorf(ctx, "event.usecase.publish: publish failed: %v", err)
	}
}
