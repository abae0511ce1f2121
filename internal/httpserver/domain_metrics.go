package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	metricsHTTP "image-insights-srv/internal/metrics/delivery/http"
	metricsUsecase "image-insights-srv/internal/metrics/usecase"
	"image-insights-srv/internal/middleware"
)

func (srv *HTTPServer) setupMetricsDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := metricsUsecase.New(srv.l, metricsUsecase.DefaultConfig())

	handler := metricsHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Metrics domain registered")
	return nil
}
