package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Dormanator/trending-sentiments/internal/cache"
	"github.com/Dormanator/trending-sentiments/internal/config"
	"github.com/Dormanator/trending-sentiments/internal/domain"
	"github.com/Dormanator/trending-sentiments/internal/logging"
	"github.com/Dormanator/trending-sentiments/internal/sentiment"
	"github.com/Dormanator/trending-sentiments/internal/server"
	"github.com/Dormanator/trending-sentiments/internal/twitter"
)

const memoryCacheEvictionInterval = 1 * time.Minute

func setupConfig() *config.Config {
	// Only load a .env file in dev; production uses real env vars.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Skipping .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// setupCache picks the Redis-backed report cache when REDIS_URL is set and
// falls back to the in-process cache otherwise. The returned cleanup stops
// the eviction timer or closes the Redis connection.
func setupCache(cfg *config.Config, clock clockwork.Clock) (domain.ReportCache, *goredis.Client, func()) {
	if cfg.RedisURL == "" {
		memCache := cache.NewMemoryCache(cfg.CacheTTL, clock)
		stopEviction := memCache.StartEvictionTimer(memoryCacheEvictionInterval)
		return memCache, nil, stopEviction
	}

	client, err := cache.NewRedisClient(context.Background(), cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	return cache.NewRedisCache(client, cfg.CacheTTL), client, func() { _ = client.Close() }
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	reportCache, redisClient, cleanupCache := setupCache(cfg, clock)
	defer cleanupCache()

	searcher := twitter.NewClient(cfg.TwitterBearerToken, cfg.TwitterAPIBaseURL)
	scorer := sentiment.NewVaderScorer()
	engine := sentiment.NewEngine(searcher, scorer, reportCache, clock, cfg.SearchPageSize)

	srv := server.NewServer(cfg, engine, redisClient)
	done := runGracefulShutdown(srv)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
