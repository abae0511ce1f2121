package redis

import (
	"image-insights-srv/internal/report/repository"
	"image-insights-srv/pkg/log"
	pkgRedis "image-insights-srv/pkg/redis"
)

type implCache struct {
	client pkgRedis.IRedis
	l      log.Logger
}

// New - Factory function
func New(client pkgRedis.IRedis, l log.Logger) repository.Cache {
	return &implCache{
		client: client,
		l:      l,
	}
}
