package http

import (
	"image-insights-srv/internal/compliance"
	"image-insights-srv/internal/middleware"
	"image-insights-srv/pkg/discord"
	"image-insights-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler exposes the compliance domain over HTTP.
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      compliance.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc compliance.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
