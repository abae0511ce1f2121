package http

import (
	"image-insights-srv/internal/model"
	"image-insights-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processGenerateRequest(c *gin.Context) (generateReq, model.Scope, error) {
	var req generateReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processGetRequest(c *gin.Context) (getReq, model.Scope, error) {
	req := getReq{ID: c.Param("id")}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processDownloadRequest(c *gin.Context) (getReq, model.Scope, error) {
	req := getReq{ID: c.Param("id")}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processExportRequest(c *gin.Context) (exportReq, model.Scope, error) {
	var req exportReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
