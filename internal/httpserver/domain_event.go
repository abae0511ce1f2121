package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	eventHTTP "image-insights-srv/internal/event/delivery/http"
	eventPostgre "image-insights-srv/internal/event/repository/postgre"
	eventUsecase "image-insights-srv/internal/event/usecase"
	"image-insights-srv/internal/middleware"
)

func (srv *HTTPServer) setupEventDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := eventPostgre.New(srv.postgresDB, srv.l)

	cfg := eventUsecase.DefaultConfig()
	cfg.WeightDuration = srv.config.Scoring.Engagement.Duration
	cfg.WeightPosition = srv.config.Scoring.Engagement.Position
	cfg.WeightInteraction = srv.config.Scoring.Engagement.Interaction
	cfg.WeightDevice = srv.config.Scoring.Engagement.Device

	uc := eventUsecase.New(repo, srv.kafkaProducer, srv.clock, srv.l, cfg)
	srv.eventUC = uc

	handler := eventHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Event domain registered")
	return nil
}
