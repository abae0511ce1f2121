package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"image-insights-srv/internal/middleware"
	structuredHTTP "image-insights-srv/internal/structured/delivery/http"
	structuredUsecase "image-insights-srv/internal/structured/usecase"
)

func (srv *HTTPServer) setupStructuredDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := structuredUsecase.New(srv.rabbitPublisher, srv.l, structuredUsecase.DefaultConfig())

	handler := structuredHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Structured data domain registered")
	return nil
}
