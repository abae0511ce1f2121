package http

import (
	"fmt"
	"net/http"

	"image-insights-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Generate - Aggregate recorded events into a persisted report
// @Summary Generate engagement report
// @Description Aggregates the caller's recorded events into a summary, uploads the CSV artifact and persists the report record.
// @Tags Reports
// @Accept json
// @Produce json
// @Param body body generateReq true "Generate request"
// @Success 200 {object} generateResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports [post]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGenerateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Generate: processGenerateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	input := req.toInput()

	output, err := h.uc.Generate(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Generate: usecase Generate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// Get - Fetch a report record
// @Summary Get report
// @Description Returns a report record with its cached summary when still available.
// @Tags Reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} reportResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports/{id} [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Get: processGetRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.Get(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Get: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newGetResp(output))
}

// Download - Presign a download URL for a completed report
// @Summary Download report artifact
// @Description Returns a short-lived presigned URL for the CSV artifact of a completed report.
// @Tags Reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} downloadResp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports/{id}/download [get]
func (h *handler) Download(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDownloadRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Download: processDownloadRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.Download(ctx, sc, req.toDownloadInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Download: usecase Download failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDownloadResp(output))
}

// Export - Stream the caller's events as CSV
// @Summary Export events as CSV
// @Description Renders the caller's recorded events as a CSV payload without persisting a report record.
// @Tags Reports
// @Accept json
// @Produce text/csv
// @Param body body exportReq true "Export request"
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports/export [post]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processExportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Export: processExportRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.ExportCSV(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Export: usecase ExportCSV failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	c.Data(http.StatusOK, output.ContentType, output.Data)
}
