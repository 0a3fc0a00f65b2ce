package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Dormanator/trending-sentiments/internal/domain"
	"github.com/Dormanator/trending-sentiments/internal/metrics"
)

// MemoryCache caches reports in-process with TTL expiration. Used when no
// Redis URL is configured (single-instance mode).
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	ttl     time.Duration
	clock   clockwork.Clock
}

type memoryEntry struct {
	report    *domain.Report
	expiresAt time.Time
}

var _ domain.ReportCache = (*MemoryCache)(nil)

// NewMemoryCache creates a report cache with the given TTL.
func NewMemoryCache(ttl time.Duration, clock clockwork.Clock) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
		clock:   clock,
	}
}

// Get returns the cached report for a query if present and not expired.
func (c *MemoryCache) Get(_ context.Context, query string) (*domain.Report, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[query]
	if !ok {
		return nil, false, nil
	}
	// Expired entries read as misses; eviction happens periodically under
	// the write lock.
	if c.clock.Now().After(entry.expiresAt) {
		return nil, false, nil
	}
	return entry.report, true, nil
}

// Set stores a report with the configured TTL.
func (c *MemoryCache) Set(_ context.Context, query string, report *domain.Report) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[query] = &memoryEntry{
		report:    report,
		expiresAt: c.clock.Now().Add(c.ttl),
	}
	return nil
}

// Size returns the current number of entries (including expired).
func (c *MemoryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// EvictExpired removes expired entries and returns the count evicted.
func (c *MemoryCache) EvictExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	evicted := 0
	for query, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, query)
			evicted++
		}
	}
	return evicted
}

// StartEvictionTimer evicts expired entries on the given interval in a
// background goroutine. The returned stop function cleans it up.
func (c *MemoryCache) StartEvictionTimer(interval time.Duration) func() {
	ticker := c.clock.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.Chan():
				evicted := c.EvictExpired()
				if evicted > 0 {
					slog.Debug("Evicted expired report cache entries",
						"count", evicted,
						"remaining", c.Size(),
					)
					metrics.ReportCacheEvictions.Add(float64(evicted))
				}
				metrics.ReportCacheSize.Set(float64(c.Size()))

			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() {
		close(done)
	}
}
