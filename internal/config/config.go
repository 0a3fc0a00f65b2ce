package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultCacheTTL = 10 * time.Minute
	defaultPageSize = 100
	maxPageSize     = 100
)

type Config struct {
	AppEnv             string
	Port               string
	LogLevel           string
	LogFormat          string
	TwitterBearerToken string
	TwitterAPIBaseURL  string
	RedisURL           string
	CacheTTL           time.Duration
	SearchPageSize     int
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		TwitterBearerToken: getEnv("TWITTER_BEARER_TOKEN", ""),
		TwitterAPIBaseURL:  getEnv("TWITTER_API_BASE_URL", ""),
		RedisURL:           getEnv("REDIS_URL", ""),
		CacheTTL:           defaultCacheTTL,
		SearchPageSize:     defaultPageSize,
	}

	if cfg.TwitterBearerToken == "" {
		return nil, fmt.Errorf("TWITTER_BEARER_TOKEN is required")
	}

	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("CACHE_TTL must be a duration (e.g. 10m): %w", err)
		}
		if ttl <= 0 {
			return nil, fmt.Errorf("CACHE_TTL must be positive, got %s", ttl)
		}
		cfg.CacheTTL = ttl
	}

	if raw := os.Getenv("SEARCH_PAGE_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("SEARCH_PAGE_SIZE must be an integer: %w", err)
		}
		if size < 1 || size > maxPageSize {
			return nil, fmt.Errorf("SEARCH_PAGE_SIZE must be between 1 and %d, got %d", maxPageSize, size)
		}
		cfg.SearchPageSize = size
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
