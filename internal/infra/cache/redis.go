package cache

import (
	"github.com/redis/go-redis/v9"

	"github.com/haarkliniek/HK-AvailabilityService/internal/config"
)

// NewRedisClient creates a Redis client from configuration
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}
