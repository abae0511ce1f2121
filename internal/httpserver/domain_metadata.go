package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	metadataHTTP "image-insights-srv/internal/metadata/delivery/http"
	metadataUsecase "image-insights-srv/internal/metadata/usecase"
	"image-insights-srv/internal/middleware"
)

func (srv *HTTPServer) setupMetadataDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := metadataUsecase.New(srv.catalogClient, srv.clock, srv.l, metadataUsecase.DefaultConfig())

	handler := metadataHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Metadata domain registered")
	return nil
}
