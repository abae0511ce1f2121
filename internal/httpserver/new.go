package httpserver

import (
	"database/sql"
	"errors"

	"image-insights-srv/config"
	"image-insights-srv/internal/event"
	"image-insights-srv/pkg/catalogsrv"
	"image-insights-srv/pkg/discord"
	"image-insights-srv/pkg/encrypter"
	pkgJWT "image-insights-srv/pkg/jwt"
	"image-insights-srv/pkg/kafka"
	"image-insights-srv/pkg/log"
	miniopkg "image-insights-srv/pkg/minio"
	"image-insights-srv/pkg/rabbitmq"
	pkgRedis "image-insights-srv/pkg/redis"
	"image-insights-srv/pkg/util"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Storage Configuration
	minioClient miniopkg.MinIO

	// Messaging Configuration
	kafkaProducer   kafka.IProducer
	rabbitPublisher rabbitmq.IPublisher

	// Collaborator Services
	catalogClient catalogsrv.ICatalog

	// Authentication & Security Configuration
	config       *config.Config
	jwtManager   *pkgJWT.Manager
	cookieConfig config.CookieConfig
	encrypter    encrypter.Encrypter

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Shared domain state
	clock   util.Clock
	eventUC event.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Storage Configuration
	MinIO miniopkg.MinIO

	// Messaging Configuration
	KafkaProducer   kafka.IProducer
	RabbitPublisher rabbitmq.IPublisher

	// Collaborator Services
	CatalogClient catalogsrv.ICatalog

	// Authentication & Security Configuration
	Config       *config.Config
	JWTManager   *pkgJWT.Manager
	CookieConfig config.CookieConfig
	Encrypter    encrypter.Encrypter

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		// Storage Configuration
		minioClient: cfg.MinIO,

		// Messaging Configuration
		kafkaProducer:   cfg.KafkaProducer,
		rabbitPublisher: cfg.RabbitPublisher,

		// Collaborator Services
		catalogClient: cfg.CatalogClient,

		// Authentication & Security Configuration
		config:       cfg.Config,
		jwtManager:   cfg.JWTManager,
		cookieConfig: cfg.CookieConfig,
		encrypter:    cfg.Encrypter,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,

		clock: util.NewRealClock(),
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	return nil
}
