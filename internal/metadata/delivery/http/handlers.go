package http

import (
	"image-insights-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Synthesize - Derive filenames, metadata and copyright from product image data
// @Summary Synthesize image metadata
// @Description Derives canonical filenames, EXIF-like metadata and a copyright record from a product image descriptor. Product context is fetched from the catalog when omitted.
// @Tags Metadata
// @Accept json
// @Produce json
// @Param body body synthesizeReq true "Synthesize request"
// @Success 200 {object} synthesizeResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/metadata/synthesize [post]
func (h *handler) Synthesize(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSynthesizeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "metadata.delivery.http.Synthesize: processSynthesizeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	input := req.toInput()

	output, err := h.uc.Synthesize(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "metadata.delivery.http.Synthesize: usecase Synthesize failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSynthesizeResp(output))
}
