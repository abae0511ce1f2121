package middleware

import (
	"image-insights-srv/config"
	"image-insights-srv/pkg/encrypter"
	"image-insights-srv/pkg/jwt"
	"image-insights-srv/pkg/log"
)

type Middleware struct {
	l            log.Logger
	jwtManager   *jwt.Manager
	cookieConfig config.CookieConfig
	internalKey  string
	config       *config.Config
	encrypter    encrypter.Encrypter
}

func New(l log.Logger, jwtManager *jwt.Manager, cookieConfig config.CookieConfig, internalKey string, cfg *config.Config, enc encrypter.Encrypter) Middleware {
	return Middleware{
		l:            l,
		jwtManager:   jwtManager,
		cookieConfig: cookieConfig,
		internalKey:  internalKey,
		config:       cfg,
		encrypter:    enc,
	}
}
