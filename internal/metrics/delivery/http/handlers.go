package http

import (
	"image-insights-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// ComputePerformance - Derive performance metrics from a raw sample
// @Summary Compute performance metrics
// @Description Compares a runtime performance sample against the Core Web Vitals baselines and returns improvements, compression ratio, quality score and grade.
// @Tags Metrics
// @Accept json
// @Produce json
// @Param body body performanceReq true "Performance sample"
// @Success 200 {object} performanceResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/metrics/performance [post]
func (h *handler) ComputePerformance(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processPerformanceRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "metrics.delivery.http.ComputePerformance: processPerformanceRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	input := req.toInput()

	output, err := h.uc.ComputePerformance(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "metrics.delivery.http.ComputePerformance: usecase ComputePerformance failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newPerformanceResp(output))
}

// ComputeSEOImpact - Estimate search visibility impact
// @Summary Compute SEO impact
// @Description Blends metadata-quality sub-scores into a composite SEO score and projects CTR and traffic uplift from search-console numbers.
// @Tags Metrics
// @Accept json
// @Produce json
// @Param body body seoImpactReq true "Search metrics"
// @Success 200 {object} seoImpactResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/metrics/seo-impact [post]
func (h *handler) ComputeSEOImpact(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSEOImpactRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "metrics.delivery.http.ComputeSEOImpact: processSEOImpactRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	input := req.toInput()

	output, err := h.uc.ComputeSEOImpact(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "metrics.delivery.http.ComputeSEOImpact: usecase ComputeSEOImpact failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSEOImpactResp(output))
}
