// file: service/cache.go

package service

import (
	"context"
	"encoding/json"
	"food-storefront/logger"
	"time"

	"github.com/redis/go-redis/v9"
)

// ICacheClient is the subset of the Redis client the services use.
type ICacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

const defaultCacheTTL = 10 * time.Minute

// cacheAside returns the cached JSON value under key, or calls load and
// stores its result. Cache failures only cost a database round trip.
func cacheAside[T any](ctx context.Context, cache ICacheClient, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	if cache == nil {
		return load()
	}

	if cached, err := cache.Get(ctx, key).Result(); err == nil {
		var value T
		if err := json.Unmarshal([]byte(cached), &value); err == nil {
			return value, nil
		}
	} else if err != redis.Nil {
		logger.Log.WithError(err).WithField("key", key).Warn("Cache read failed")
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	if data, err := json.Marshal(value); err == nil {
		if ttl <= 0 {
			ttl = defaultCacheTTL
		}
		if err := cache.Set(ctx, key, data, ttl).Err(); err != nil {
			logger.Log.WithError(err).WithField("key", key).Warn("Cache write failed")
		}
	}
	return value, nil
}

func invalidate(ctx context.Context, cache ICacheClient, keys ...string) {
	if cache == nil {
		return
	}
	if err := cache.Del(ctx, keys...).Err(); err != nil {
		logger.Log.WithError(err).WithField("keys", keys).Warn("Cache invalidation failed")
	}
}
