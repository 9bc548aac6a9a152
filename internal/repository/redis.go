package repository

import (
	"context"
	"fmt"
	"time"

	"periscope/internal/config"
	"periscope/pkg/util"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// CacheKeyPrefix namespaces all envelope cache entries in Redis
const CacheKeyPrefix = "periscope:cache:"

// RedisCache is a CacheRepository backed by Redis, so multiple instances
// can share one envelope cache.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a new Redis-backed cache
func NewRedisCache(cfg *config.RedisConfig, ttl time.Duration) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisCache{
		client: rdb,
		ttl:    ttl,
	}
}

// Get returns the cached value for key, if present. Backend errors are
// logged and read as a miss.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := c.client.Get(ctx, c.cacheKey(key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("Redis cache read failed")
		}
		return nil, false
	}
	return value, true
}

// Set stores value under key for the configured TTL
func (c *RedisCache) Set(ctx context.Context, key string, value []byte) {
	if err := c.client.Set(ctx, c.cacheKey(key), value, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("Redis cache write failed")
	}
}

// Clear drops all entries under the cache prefix, leaving other keys in
// the database untouched
func (c *RedisCache) Clear(ctx context.Context) {
	var keys []string
	iter := c.client.Scan(ctx, 0, CacheKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Warn().Err(err).Msg("Redis cache scan failed")
		return
	}

	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			log.Warn().Err(err).Msg("Redis cache clear failed")
		}
	}
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// cacheKey hashes the logical key so arbitrary query strings stay within
// Redis key length limits
func (c *RedisCache) cacheKey(key string) string {
	return fmt.Sprintf("%s%x", CacheKeyPrefix, util.HashString(key))
}
