package mojocn

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore 多实例部署的时候验证码要放在 redis 里，base64Captcha 自带的只有内存版
type RedisStore struct {
	cmd        redis.Cmdable
	expiration time.Duration
	// base64Captcha.Store 的方法不带 ctx，每次操作单独给一个超时
	timeout time.Duration
}

func NewRedisStore(cmd redis.Cmdable, expiration time.Duration) *RedisStore {
	return &RedisStore{
		cmd:        cmd,
		expiration: expiration,
		timeout:    time.Second,
	}
}

func (s *RedisStore) key(id string) string {
	return fmt.Sprintf("captcha:%s", id)
}

func (s *RedisStore) Set(id string, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	return s.cmd.Set(ctx, s.key(id), value, s.expiration).Err()
}

func (s *RedisStore) Get(id string, clear bool) string {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	var (
		val string
		err error
	)
	if clear {
		val, err = s.cmd.GetDel(ctx, s.key(id)).Result()
	} else {
		val, err = s.cmd.Get(ctx, s.key(id)).Result()
	}
	if err != nil {
		return ""
	}
	return val
}

func (s *RedisStore) Verify(id, answer string, clear bool) bool {
	val := s.Get(id, clear)
	return val != "" && strings.EqualFold(val, strings.TrimSpace(answer))
}
