package http

import (
	"image-insights-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Emit - Emit a structured-data document
// @Summary Emit structured data
// @Description Maps a payload into the fixed schema shape for the requested kind and forwards the document to the page injector.
// @Tags StructuredData
// @Accept json
// @Produce json
// @Param body body emitReq true "Emit request"
// @Success 200 {object} documentResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/structured-data/emit [post]
func (h *handler) Emit(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processEmitRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "structured.delivery.http.Emit: processEmitRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	input := req.toInput()

	output, err := h.uc.Emit(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "structured.delivery.http.Emit: usecase Emit failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDocumentResp(output))
}
