package config

import (
	redisModule "dispatch-service/src/pkg/redis"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

func LoadRedisConfig(v *viper.Viper) {
	if err := redisModule.InitConnection(v); err != nil {
		panic(err)
	}
}

func NewRedis() redis.UniversalClient {
	return redisModule.GetClient()
}
