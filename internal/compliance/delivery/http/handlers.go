package http

import (
	"image-insights-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Validate - Score an image against a platform's requirements
// @Summary Validate image compliance
// @Description Scores a product image descriptor against a named platform spec and returns a graded compliance report with recommendations.
// @Tags Compliance
// @Accept json
// @Produce json
// @Param body body validateReq true "Validate request"
// @Success 200 {object} reportResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/compliance/validate [post]
func (h *handler) Validate(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processValidateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "compliance.delivery.http.Validate: processValidateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	input := req.toInput()

	output, err := h.uc.Validate(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "compliance.delivery.http.Validate: usecase Validate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newReportResp(output))
}

// Platforms - List registered platform specs
// @Summary List compliance platforms
// @Description Returns the registered platform specs with their thresholds.
// @Tags Compliance
// @Produce json
// @Success 200 {object} platformsResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/compliance/platforms [get]
func (h *handler) Platforms(c *gin.Context) {
	ctx := c.Request.Context()

	specs := h.uc.Platforms(ctx)
	response.OK(c, h.newPlatformsResp(specs))
}
