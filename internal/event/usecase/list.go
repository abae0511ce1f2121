package usecase

import (
	"context"

	"image-insights-srv/internal/event"
	"image-insights-srv/internal/event/repository"
	"image-insights-srv/internal/model"
	"image-insights-srv/pkg/paginator"
)

// List returns events for the caller's session from the persistent log,
// falling back to the in-memory snapshot when no repository is wired.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input event.ListInput) (event.ListOutput, error) {
	input.Paginate.Adjust()

	if uc.repo == nil {
		return uc.listFromMemory(sc, input), nil
	}

	opt := repository.ListEventsOptions{
		SessionID: sc.SessionID,
		ImageID:   input.ImageID,
		EventType: input.EventType,
		From:      input.From,
		To:        input.To,
		Limit:     input.Paginate.Limit,
		Offset:    input.Paginate.Offset(),
	}

	events, err := uc.repo.ListEvents(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.List: ListEvents failed: %v", err)
		return event.ListOutput{}, event.ErrPersistFailed
	}

	total, err := uc.repo.CountEvents(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.List: CountEvents failed: %v", err)
		return event.ListOutput{}, event.ErrPersistFailed
	}

	return event.ListOutput{
		Events: events,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(events)),
			PerPage:     input.Paginate.Limit,
			CurrentPage: input.Paginate.Page,
		},
	}, nil
}

func (uc *implUseCase) listFromMemory(sc model.Scope, input event.ListInput) event.ListOutput {
	snapshot := uc.snapshot(sc.SessionID)

	var filtered []model.AnalyticsEvent
	for _, e := range snapshot {
		if input.ImageID != "" && e.ImageID != input.ImageID {
			continue
		}
		if input.EventType != "" && e.EventType != input.EventType {
			continue
		}
		if input.From != nil && e.Timestamp.Before(*input.From) {
			continue
		}
		if input.To != nil && e.Timestamp.After(*input.To) {
			continue
		}
		filtered = append(filtered, e)
	}

	total := int64(len(filtered))
	offset := input.Paginate.Offset()
	if offset > total {
		offset = total
	}
	end := offset + input.Paginate.Limit
	if end > total {
		end = total
	}
	page := filtered[offset:end]

	return event.ListOutput{
		Events: page,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(page)),
			PerPage:     input.Paginate.Limit,
			CurrentPage: input.Paginate.Page,
		},
	}
}

// Snapshot returns a copy of the caller's in-memory session log taken at
// call time; later appends are not included.
func (uc *implUseCase) Snapshot(ctx context.Context, sc model.Scope) []model.AnalyticsEvent {
	return uc.snapshot(sc.SessionID)
}

func (uc *implUseCase) snapshot(sessionID string) []model.AnalyticsEvent {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	lg, ok := uc.logs[sessionID]
	if !ok {
		return nil
	}

	out := make([]model.AnalyticsEvent, len(lg.events))
	copy(out, lg.events)
	return out
}

// Flush clears the caller's session log after an export and removes the
// persisted rows. Returns the number of in-memory events dropped.
func (uc *implUseCase) Flush(ctx context.Context, sc model.Scope) (int, error) {
	uc.mu.Lock()
	var dropped int
	if lg, ok := uc.logs[sc.SessionID]; ok {
		dropped = len(lg.events)
		delete(uc.logs, sc.SessionID)
	}
	uc.mu.Unlock()

	if uc.repo != nil {
		if _, err := uc.repo.DeleteEventsBySession(ctx, sc.SessionID); err != nil {
			uc.l.Errorf(ctx, "event.usecase.Flush: DeleteEventsBySession failed: %v", err)
			return dropped, event.ErrPersistFailed
		}
	}

	uc.l.Infof(ctx, "event.usecase.Flush: flushed %d events for session %s", dropped, sc.SessionID)
	return dropped, nil
}
