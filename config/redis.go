package config

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a ready client, or nil with the ping error when redis
// is unreachable. Callers treat a nil client as "caching disabled"; the
// service runs without it.
func ConnectRedis(cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
