package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	complianceHTTP "image-insights-srv/internal/compliance/delivery/http"
	complianceUsecase "image-insights-srv/internal/compliance/usecase"
	"image-insights-srv/internal/middleware"
)

func (srv *HTTPServer) setupComplianceDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	cfg := complianceUsecase.DefaultConfig()
	cfg.WeightDimensions = srv.config.Scoring.Compliance.Dimensions
	cfg.WeightFormat = srv.config.Scoring.Compliance.Format
	cfg.WeightAltText = srv.config.Scoring.Compliance.AltText
	cfg.WeightFileSize = srv.config.Scoring.Compliance.FileSize

	uc := complianceUsecase.New(srv.l, cfg)

	handler := complianceHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Compliance domain registered")
	return nil
}
