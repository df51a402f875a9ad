package database

import (
	"context"
	"fmt"
	"time"

	"logistica_cotizaciones/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens the session cache client. It returns nil, nil when no
// address is configured so the cache layer can be skipped.
func ConnectRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if !cfg.RedisEnabled() {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return client, nil
}
