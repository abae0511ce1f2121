package http

import (
	"image-insights-srv/pkg/response"
	"image-insights-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Record - Record an interaction event
// @Summary Record interaction event
// @Description Appends a typed interaction event to the session log, computing its engagement score at write time.
// @Tags Events
// @Accept json
// @Produce json
// @Param body body recordReq true "Record request"
// @Success 200 {object} eventResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/events [post]
func (h *handler) Record(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processRecordRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "event.delivery.http.Record: processRecordRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	input := req.toInput()

	output, err := h.uc.Record(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "event.delivery.http.Record: usecase Record failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newEventResp(output))
}

// List - List session events
// @Summary List interaction events
// @Description Returns the caller's recorded events filtered by image, type and time window.
// @Tags Events
// @Produce json
// @Param image_id query string false "Filter by image id"
// @Param event_type query string false "Filter by event type"
// @Param from query int false "Window start (unix ms)"
// @Param to query int false "Window end (unix ms)"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/events [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "event.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	input := req.toInput()

	output, err := h.uc.List(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "event.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Flush - Clear the session event log
// @Summary Flush session events
// @Description Clears the caller's in-memory and persisted event log after an export.
// @Tags Events
// @Produce json
// @Success 200 {object} flushResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/events/flush [post]
func (h *handler) Flush(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	dropped, err := h.uc.Flush(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "event.delivery.http.Flush: usecase Flush failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, flushResp{Dropped: dropped})
}
