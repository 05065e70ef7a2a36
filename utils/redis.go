package utils

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sahayognepal/charity-backend/config"
)

var (
	redisClient *redis.Client
	redisCtx    = context.Background()
)

// InitRedis connects the shared Redis client used for password reset tokens.
func InitRedis(cfg *config.Config) error {
	addr := cfg.RedisAddr
	if addr == "" {
		addr = "localhost:6379"
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	return redisClient.Ping(redisCtx).Err()
}

func SetToken(key, value string, ttl time.Duration) error {
	if redisClient == nil {
		return errors.New("redis not initialized")
	}
	return redisClient.Set(redisCtx, key, value, ttl).Err()
}

func GetToken(key string) (string, error) {
	if redisClient == nil {
		return "", errors.New("redis not initialized")
	}
	return redisClient.Get(redisCtx, key).Result()
}

func DeleteToken(key string) error {
	if redisClient == nil {
		return errors.New("redis not initialized")
	}
	return redisClient.Del(redisCtx, key).Err()
}
