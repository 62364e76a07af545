package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/userhub/user-management-api/internal/api/metrics"
	"github.com/userhub/user-management-api/internal/core/ports"
)

const (
	statsKey = "stats:users"
	statsTTL = time.Minute
)

// StatsCache caches the serialized user statistics under a TTL'd key.
// Mutations invalidate the key; the TTL bounds staleness when an
// invalidation is missed.
type StatsCache struct {
	client *redis.Client
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get returns the cached statistics, or (nil, nil) on a cache miss.
func (c *StatsCache) Get(ctx context.Context) (*ports.UserStats, error) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.StatsCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var stats ports.UserStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}

	metrics.StatsCacheTotal.WithLabelValues("hit").Inc()
	return &stats, nil
}

// Set stores the statistics with the cache TTL.
func (c *StatsCache) Set(ctx context.Context, stats *ports.UserStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, statsKey, raw, statsTTL).Err()
}

// Invalidate drops the cached statistics after a mutation.
func (c *StatsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, statsKey).Err()
}
