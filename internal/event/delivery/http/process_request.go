package http

import (
	"image-insights-srv/internal/model"
	"image-insights-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processRecordRequest(c *gin.Context) (recordReq, model.Scope, error) {
	var req recordReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processListRequest(c *gin.Context) (listReq, model.Scope, error) {
	var req listReq

	if err := c.ShouldBindQuery(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
