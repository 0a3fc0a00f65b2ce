package server

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Dormanator/trending-sentiments/internal/config"
	"github.com/Dormanator/trending-sentiments/internal/domain"
	apperrors "github.com/Dormanator/trending-sentiments/internal/errors"
)

// Server exposes the analysis pipeline over HTTP. redisClient is nil when
// the service runs with the in-memory cache; health checks adapt.
type Server struct {
	echo        *echo.Echo
	config      *config.Config
	analyzer    domain.Analyzer
	redisClient *goredis.Client
	startTime   time.Time
}

func NewServer(cfg *config.Config, analyzer domain.Analyzer, redisClient *goredis.Client) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:        e,
		config:      cfg,
		analyzer:    analyzer,
		redisClient: redisClient,
		startTime:   time.Now(),
	}

	srv.registerRoutes()
	return srv
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
