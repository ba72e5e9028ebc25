package client

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisClient parses a redis:// URL and verifies the connection with PING.
func RedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("error to verify connection with Redis: %w", err)
	}

	return client, nil
}
