package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Dormanator/trending-sentiments/internal/domain"
)

const reportKeyPrefix = "report:"

// RedisCache caches reports in Redis with server-side TTL, letting multiple
// instances share search results for the same query.
type RedisCache struct {
	rdb *goredis.Client
	ttl time.Duration
}

var _ domain.ReportCache = (*RedisCache)(nil)

// NewRedisCache creates a report cache on an existing Redis client.
func NewRedisCache(rdb *goredis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached report for a query. A missing key is a miss, not
// an error.
func (c *RedisCache) Get(ctx context.Context, query string) (*domain.Report, bool, error) {
	payload, err := c.rdb.Get(ctx, reportKeyPrefix+query).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var report domain.Report
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, false, fmt.Errorf("decode cached report: %w", err)
	}
	return &report, true, nil
}

// Set stores a report under the query key with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, query string, report *domain.Report) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := c.rdb.Set(ctx, reportKeyPrefix+query, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
