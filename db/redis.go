// file: db/redis.go

package db

import (
	"context"
	"fmt"
	"food-storefront/config"
	"food-storefront/logger"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis initializes and returns a new Redis client.
func ConnectRedis() (*redis.Client, error) {
	cfg := config.AppConfig.Redis

	redisAddr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := pingRedis(context.Background(), rdb); err != nil {
		return nil, err
	}

	logger.Log.WithField("address", redisAddr).Info("Redis connection established successfully")
	return rdb, nil
}

// pingRedis checks the connection and closes the client when it is unreachable.
func pingRedis(ctx context.Context, rdb *redis.Client) error {
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Log.WithError(err).Error("Failed to ping Redis")
		_ = rdb.Close()
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}
