package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/jhoicas/homeexotica-crm/internal/application/ports"
	"github.com/jhoicas/homeexotica-crm/pkg/config"
)

// NewRedisClient abre el cliente y verifica la conexión con PING.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// New elige la implementación según CACHE_DRIVER. client puede ser nil con driver memory.
func New(cfg config.CacheConfig, client *redis.Client, log zerolog.Logger) ports.QueryCache {
	if cfg.Driver == "redis" && client != nil {
		return NewRedis(client, time.Duration(cfg.TTLSeconds)*time.Second, log)
	}
	return NewMemory()
}
