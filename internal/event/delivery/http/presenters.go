package http

import (
	"image-insights-srv/internal/event"
	"image-insights-srv/internal/model"
	"image-insights-srv/pkg/paginator"
	"image-insights-srv/pkg/util"
)

// =====================================================
// Request DTOs
// =====================================================

type recordReq struct {
	EventType       string            `json:"event_type" binding:"required"`
	ImageID         string            `json:"image_id" binding:"required"`
	DeviceType      string            `json:"device_type,omitempty"`
	InteractionKind string            `json:"interaction_kind,omitempty"`
	Position        string            `json:"position,omitempty"`
	DurationMs      int64             `json:"duration_ms,omitempty"`
	LoadTimeMs      int64             `json:"load_time_ms,omitempty"`
	Details         map[string]string `json:"details,omitempty"`
}

func (r recordReq) toInput() event.RecordInput {
	return event.RecordInput{
		EventType:       r.EventType,
		ImageID:         r.ImageID,
		DeviceType:      r.DeviceType,
		InteractionKind: r.InteractionKind,
		Position:        r.Position,
		DurationMs:      r.DurationMs,
		LoadTimeMs:      r.LoadTimeMs,
		Details:         r.Details,
	}
}

type listReq struct {
	ImageID   string `form:"image_id"`
	EventType string `form:"event_type"`
	From      *int64 `form:"from"`
	To        *int64 `form:"to"`
	Page      int    `form:"page"`
	Limit     int64  `form:"limit"`
}

func (r listReq) toInput() event.ListInput {
	input := event.ListInput{
		ImageID:   r.ImageID,
		EventType: r.EventType,
		Paginate: paginator.PaginateQuery{
			Page:  r.Page,
			Limit: r.Limit,
		},
	}
	if r.From != nil {
		t := util.MillisecondsToTime(*r.From)
		input.From = &t
	}
	if r.To != nil {
		t := util.MillisecondsToTime(*r.To)
		input.To = &t
	}
	return input
}

// =====================================================
// Response DTOs
// =====================================================

type eventResp struct {
	ID              string            `json:"id"`
	SessionID       string            `json:"session_id,omitempty"`
	Timestamp       int64             `json:"timestamp"`
	EventType       string            `json:"event_type"`
	ImageID         string            `json:"image_id"`
	DeviceType      string            `json:"device_type,omitempty"`
	DurationMs      int64             `json:"duration_ms"`
	EngagementScore float64           `json:"engagement_score"`
	LoadTimeMs      int64             `json:"load_time_ms"`
	Details         map[string]string `json:"details,omitempty"`
}

type listResp struct {
	Events    []eventResp                 `json:"events"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

type flushResp struct {
	Dropped int `json:"dropped"`
}

func (h *handler) newEventResp(e model.AnalyticsEvent) eventResp {
	return eventResp{
		ID:              e.ID,
		SessionID:       e.SessionID,
		Timestamp:       e.Timestamp.UnixMilli(),
		EventType:       e.EventType,
		ImageID:         e.ImageID,
		DeviceType:      e.DeviceType,
		DurationMs:      e.DurationMs,
		EngagementScore: e.EngagementScore,
		LoadTimeMs:      e.LoadTimeMs,
		Details:         e.Details,
	}
}

func (h *handler) newListResp(output event.ListOutput) listResp {
	resp := listResp{
		Events:    make([]eventResp, len(output.Events)),
		Paginator: output.Paginator.ToResponse(),
	}
	for i, e := range output.Events {
		resp.Events[i] = h.newEventResp(e)
	}
	return resp
}
