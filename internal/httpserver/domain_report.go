package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"image-insights-srv/internal/middleware"
	reportHTTP "image-insights-srv/internal/report/delivery/http"
	reportPostgre "image-insights-srv/internal/report/repository/postgre"
	reportRedis "image-insights-srv/internal/report/repository/redis"
	reportUsecase "image-insights-srv/internal/report/usecase"
)

// setupReportDomain wires the report domain. Depends on the event domain
// being registered first.
func (srv *HTTPServer) setupReportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := reportPostgre.New(srv.postgresDB, srv.l)
	cache := reportRedis.New(srv.redisClient, srv.l)

	cfg := reportUsecase.DefaultConfig()
	cfg.Bucket = srv.config.MinIO.Bucket

	uc := reportUsecase.New(srv.l, repo, cache, srv.minioClient, srv.eventUC, srv.clock, cfg)

	handler := reportHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Report domain registered")
	return nil
}
