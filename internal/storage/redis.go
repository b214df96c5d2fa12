// Package storage provides the optional Redis cache in front of Data Dragon.
package storage

import (
	"context"
	"encoding/json"
	"time"

	"league-threats/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Cache wraps go-redis. When REDIS_URL is unset or the server is unreachable
// the cache degrades to a no-op: every Get misses and every Set succeeds
// silently, so the service keeps working from SQLite and Data Dragon alone.
type Cache struct {
	client  *redis.Client
	enabled bool
	logger  zerolog.Logger
}

func NewCache(cfg *config.Config, logger zerolog.Logger) *Cache {
	if cfg.RedisURL == "" {
		logger.Info().Msg("redis not configured, cache disabled")
		return &Cache{logger: logger}
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to parse REDIS_URL, cache disabled")
		return &Cache{logger: logger}
	}

	opt.PoolSize = 5
	opt.MinIdleConns = 1
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn().Err(err).Msg("redis connection failed, cache disabled")
		return &Cache{logger: logger}
	}

	logger.Info().Msg("redis connected")
	return &Cache{client: client, enabled: true, logger: logger}
}

// GetJSON reads a cached value into dest. The bool reports a cache hit.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if !c.enabled {
		return false, nil
	}

	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("corrupt cache entry, dropping")
		c.client.Del(ctx, key)
		return false, nil
	}
	return true, nil
}

// SetJSON stores a value with a TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if !c.enabled {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

// Close releases the underlying connection pool.
func (c *Cache) Close() error {
	if !c.enabled {
		return nil
	}
	return c.client.Close()
}
