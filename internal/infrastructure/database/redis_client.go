package database

import (
	"context"
	"fmt"

	"storefront_checkout/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectRedis parses redisURL (redis://[:password@]host:port/db) and pings
// the server before returning the client.
func ConnectRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		logger.Error(ctx, "[checkout][database] redis ping failed", err, zap.String("addr", opts.Addr))
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	logger.Info(ctx, "[checkout][database] redis client ready", zap.String("addr", opts.Addr), zap.Int("db", opts.DB))
	return client, nil
}
