package limiter

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:embed lua/slide_window.lua
var luaSlideWindow string

var slideWindowScript = redis.NewScript(luaSlideWindow)

// RedisSlideWindowLimiter 基于 redis zset 的滑动窗口限流器
type RedisSlideWindowLimiter struct {
	cmd      redis.Cmdable
	interval time.Duration
	// interval 内允许 rate 个请求
	rate int
}

func NewRedisSlideWindowLimiter(cmd redis.Cmdable, interval time.Duration, rate int) Limiter {
	return &RedisSlideWindowLimiter{
		cmd:      cmd,
		interval: interval,
		rate:     rate,
	}
}

func (r *RedisSlideWindowLimiter) Limit(ctx context.Context, key string) (bool, error) {
	res, err := slideWindowScript.Run(ctx, r.cmd, []string{key},
		r.interval.Milliseconds(), r.rate, time.Now().UnixMilli()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	limited, ok := res.(int64)
	if !ok {
		return false, fmt.Errorf("限流脚本返回了意外的类型 %T", res)
	}
	return limited == 1, nil
}
