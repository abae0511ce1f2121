package http

import (
	"image-insights-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/reports")
	api.Use(mw.Auth())
	{
		api.POST("", h.Generate)
		api.GET("/:id", h.Get)
		api.GET("/:id/download", h.Download)
		api.POST("/export", h.Export)
	}
}
