// Package search_cache caches trending aggregates in Redis with a short
// TTL. Trending is a read-only projection of the query log and recipe
// saves, so serving a slightly stale copy is acceptable; cache failures
// degrade to a direct database read.
package search_cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mise/config"
	"mise/utils/logger"

	"github.com/redis/go-redis/v9"
)

// redisClient is the subset of redis.Cmdable the cache uses.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type SearchCache struct {
	client redisClient
	ttl    time.Duration
}

// NewSearchCache connects a cache backed by the configured Redis instance.
func NewSearchCache(cfg *config.Config) *SearchCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
	})
	return &SearchCache{client: client, ttl: cfg.Cache.TrendingExpiry}
}

// NewSearchCacheWithClient wires an existing client, used by tests.
func NewSearchCacheWithClient(client redisClient, ttl time.Duration) *SearchCache {
	return &SearchCache{client: client, ttl: ttl}
}

// Get loads a cached value into dest. The second return reports a hit;
// a miss is not an error.
func (c *SearchCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil || c.client == nil {
		return false, nil
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		logger.SafeError("failed to read search cache", "error", err, "key", key)
		return false, fmt.Errorf("cache get: %w", err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		logger.SafeError("failed to decode cached value", "error", err, "key", key)
		return false, fmt.Errorf("cache decode: %w", err)
	}

	return true, nil
}

// Set stores a value under key with the configured TTL.
func (c *SearchCache) Set(ctx context.Context, key string, value any) error {
	if c == nil || c.client == nil {
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		logger.SafeError("failed to write search cache", "error", err, "key", key)
		return fmt.Errorf("cache set: %w", err)
	}

	return nil
}
