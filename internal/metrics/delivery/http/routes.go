package http

import (
	"image-insights-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/metrics")
	api.Use(mw.Auth())
	{
		api.POST("/performance", h.ComputePerformance)
		api.POST("/seo-impact", h.ComputeSEOImpact)
	}
}
