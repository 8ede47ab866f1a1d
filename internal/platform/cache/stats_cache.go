// Package cache keeps short-lived copies of derived per-owner data in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Ash-neon/simple-invoice-generator/internal/core/domain"
	portssvc "github.com/Ash-neon/simple-invoice-generator/internal/core/ports/services"
	"github.com/redis/go-redis/v9"
)

const (
	statsKeyPrefix      = "dashboard:stats:entry:"
	generationKeyPrefix = "dashboard:stats:gen:"
)

// RedisStatsCache stores dashboard stats as JSON under one key per owner and
// generation. Invalidation bumps the owner's generation, which orphans every
// earlier entry, including one still being computed by a slow reader.
type RedisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// Ensure RedisStatsCache implements the StatsCache port
var _ portssvc.StatsCache = (*RedisStatsCache)(nil)

// NewRedisStatsCache wraps an existing client. Entries expire after ttl.
func NewRedisStatsCache(client *redis.Client, ttl time.Duration) *RedisStatsCache {
	return &RedisStatsCache{client: client, ttl: ttl}
}

// NewRedisClientFromURL parses a redis:// URL and verifies the connection.
func NewRedisClientFromURL(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return client, nil
}

func statsKey(ownerID string, generation int64) string {
	return statsKeyPrefix + ownerID + ":" + strconv.FormatInt(generation, 10)
}

func generationKey(ownerID string) string {
	return generationKeyPrefix + ownerID
}

func (c *RedisStatsCache) generation(ctx context.Context, ownerID string) (int64, error) {
	key := generationKey(ownerID)
	gen, err := c.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis GET %s: %w", key, err)
	}
	return gen, nil
}

// GetStats returns the cached stats for ownerID, or nil on a miss, together with
// the generation a later SetStats must be tagged with.
func (c *RedisStatsCache) GetStats(ctx context.Context, ownerID string) (*domain.DashboardStats, int64, error) {
	gen, err := c.generation(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}

	key := statsKey(ownerID, gen)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, gen, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("redis GET %s: %w", key, err)
	}

	var stats domain.DashboardStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, 0, fmt.Errorf("unmarshal stats %s: %w", key, err)
	}
	return &stats, gen, nil
}

// SetStats stores stats for ownerID under generation with the configured TTL.
// Stats computed before an invalidation land on a key no reader looks at.
func (c *RedisStatsCache) SetStats(ctx context.Context, ownerID string, generation int64, stats domain.DashboardStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	key := statsKey(ownerID, generation)
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis SET %s: %w", key, err)
	}
	return nil
}

// InvalidateStats moves ownerID to a new generation; older entries expire with their TTL.
func (c *RedisStatsCache) InvalidateStats(ctx context.Context, ownerID string) error {
	key := generationKey(ownerID)
	if err := c.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis INCR %s: %w", key, err)
	}
	return nil
}
