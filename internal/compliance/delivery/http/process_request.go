package http

import (
	"image-insights-srv/internal/model"
	"image-insights-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processValidateRequest(c *gin.Context) (validateReq, model.Scope, error) {
	var req validateReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
