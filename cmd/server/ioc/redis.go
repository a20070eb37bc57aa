package ioc

import (
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

func InitRedis() redis.Cmdable {
	type Config struct {
		Addr string `mapstructure:"addr"`
		DB   int    `mapstructure:"db"`
	}
	cfg := Config{Addr: "localhost:6379"}
	if err := viper.UnmarshalKey("redis", &cfg); err != nil {
		panic(err)
	}
	// 密码只从环境变量 REDIS_PASSWORD 读
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: viper.GetString("redis.password"),
		DB:       cfg.DB,
	})
}
