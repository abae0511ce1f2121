package postgre

import (
	"database/sql"

	"image-insights-srv/internal/event/repository"
	"image-insights-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New - Factory function
func New(db *sql.DB, l log.Logger) repository.EventRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
