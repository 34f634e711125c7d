package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
	"traverse-adjustment-service/internal/domain"
	"traverse-adjustment-service/internal/platform/obs"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "traverse:adjustment:"

// RedisAdjustmentCache stores adjustments as JSON values with a TTL.
type RedisAdjustmentCache struct {
	Client redis.UniversalClient
	TTL    time.Duration
}

func NewRedisAdjustmentCache(client redis.UniversalClient, ttl time.Duration) *RedisAdjustmentCache {
	return &RedisAdjustmentCache{Client: client, TTL: ttl}
}

func (c *RedisAdjustmentCache) Get(ctx context.Context, key string) (_ *domain.Adjustment, _ bool, err error) {
	defer obs.Time(ctx, "adjustment.cache.redis.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("redis adjustment cache: client is nil")
	}
	if key == "" {
		return nil, false, errors.New("redis adjustment cache: key must not be empty")
	}

	b, err := c.Client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis adjustment cache: get %q: %w", key, err)
	}

	adj, err := decodeAdjustment(b)
	if err != nil {
		return nil, false, fmt.Errorf("redis adjustment cache: %w", err)
	}
	return adj, true, nil
}

func (c *RedisAdjustmentCache) Put(ctx context.Context, key string, adj *domain.Adjustment) (err error) {
	defer obs.Time(ctx, "adjustment.cache.redis.Put")(&err)

	if c.Client == nil {
		return errors.New("redis adjustment cache: client is nil")
	}
	if key == "" {
		return errors.New("redis adjustment cache: key must not be empty")
	}

	b, err := encodeAdjustment(adj)
	if err != nil {
		return fmt.Errorf("redis adjustment cache: %w", err)
	}

	if err := c.Client.Set(ctx, redisKeyPrefix+key, b, c.TTL).Err(); err != nil {
		return fmt.Errorf("redis adjustment cache: set %q: %w", key, err)
	}
	return nil
}
