package redis

import (
	"context"
	"errors"
	"time"

	"github.com/angristan/nebula-backend/internal/infra/repository/cache"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "nebula:stream:"

type RedisCache struct {
	redisClient *redis.Client
	defaultTTL  time.Duration
}

func NewCache(
	redisClient *redis.Client,
	defaultTTL time.Duration,
) *RedisCache {
	return &RedisCache{
		redisClient: redisClient,
		defaultTTL:  defaultTTL,
	}
}

var _ cache.Cache = (*RedisCache)(nil)

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	value, err := c.redisClient.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", cache.ErrCacheMiss
		}

		return "", err
	}

	return value, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if ttl == 0 {
		ttl = c.defaultTTL
	}

	return c.redisClient.Set(ctx, keyPrefix+key, value, ttl).Err()
}

// Ping checks the connection at startup.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.redisClient.Ping(ctx).Err()
}
