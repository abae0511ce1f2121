package http

import (
	"image-insights-srv/internal/model"
	"image-insights-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processPerformanceRequest(c *gin.Context) (performanceReq, model.Scope, error) {
	var req performanceReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processSEOImpactRequest(c *gin.Context) (seoImpactReq, model.Scope, error) {
	var req seoImpactReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
