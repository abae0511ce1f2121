package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"image-insights-srv/internal/event/repository"
	"image-insights-srv/internal/model"
)

// CreateEvent inserts a single analytics event. The event is immutable once
// written.
func (r *implRepository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.AnalyticsEvent, error) {
	e := opt.Event

	var details []byte
	if len(e.Details) > 0 {
		var err error
		details, err = json.Marshal(e.Details)
		if err != nil {
			r.l.Errorf(ctx, "event.repository.postgre.CreateEvent: marshal details failed: %v", err)
			return model.AnalyticsEvent{}, err
		}
	}

	query := `INSERT INTO analytics_events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.SessionID, e.Timestamp, e.EventType, e.ImageID,
		e.DeviceType, e.DurationMs, e.EngagementScore, e.LoadTimeMs, details,
	)
	if err != nil {
		r.l.Errorf(ctx, "event.repository.postgre.CreateEvent: insert failed: %v", err)
		return model.AnalyticsEvent{}, err
	}

	return e, nil
}

// ListEvents returns events matching the options ordered by timestamp then
// insertion id, preserving insertion order on timestamp ties.
func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.AnalyticsEvent, error) {
	where, args := buildListFilter(opt)

	query := `SELECT ` + eventColumns + ` FROM analytics_events` + where + ` ORDER BY ts ASC, id ASC`
	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", opt.Limit, opt.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "event.repository.postgre.ListEvents: query failed: %v", err)
		return nil, err
	}
	defer rows.Close()

	var events []model.AnalyticsEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			r.l.Errorf(ctx, "event.repository.postgre.ListEvents: scan failed: %v", err)
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// CountEvents counts events matching the options.
func (r *implRepository) CountEvents(ctx context.Context, opt repository.ListEventsOptions) (int64, error) {
	where, args := buildListFilter(opt)

	var total int64
	query := `SELECT COUNT(*) FROM analytics_events` + where
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "event.repository.postgre.CountEvents: query failed: %v", err)
		return 0, err
	}

	return total, nil
}

// DeleteEventsBySession removes all events of a session after a flush.
func (r *implRepository) DeleteEventsBySession(ctx context.Context, sessionID string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM analytics_events WHERE session_id = $1`, sessionID)
	if err != nil {
		r.l.Errorf(ctx, "event.repository.postgre.DeleteEventsBySession: delete failed: %v", err)
		return 0, err
	}

	return result.RowsAffected()
}

func scanEvent(rows *sql.Rows) (model.AnalyticsEvent, error) {
	var (
		e       model.AnalyticsEvent
		details []byte
	)

	if err := rows.Scan(
		&e.ID, &e.SessionID, &e.Timestamp, &e.EventType, &e.ImageID,
		&e.DeviceType, &e.DurationMs, &e.EngagementScore, &e.LoadTimeMs, &details,
	); err != nil {
		return model.AnalyticsEvent{}, err
	}

	if len(details) > 0 {
		if err := json.Unmarshal(details, &e.Details); err != nil {
			return model.AnalyticsEvent{}, err
		}
	}

	return e, nil
}
