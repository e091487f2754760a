package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

var redisClient redis.UniversalClient

// InitConnection builds the singleton client from viper config and pings it.
func InitConnection(v *viper.Viper) error {
	redisClient = redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", v.GetString("redis.host"), v.GetInt("redis.port")),
		Password:     v.GetString("redis.password"),
		DB:           v.GetInt("redis.db"),
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MaxRetries:   2,
	})

	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		return fmt.Errorf("cannot connect to redis: %w", err)
	}
	return nil
}

// GetClient returns the singleton.
func GetClient() redis.UniversalClient {
	return redisClient
}
