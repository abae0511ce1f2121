package http

import (
	"image-insights-srv/internal/model"
	"image-insights-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processSynthesizeRequest(c *gin.Context) (synthesizeReq, model.Scope, error) {
	var req synthesizeReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
