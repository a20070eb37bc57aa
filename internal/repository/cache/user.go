package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/Deepfake2025/Deepfake-rear/internal/domain"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=./user.go -package=cachemocks -destination=./mocks/user.mock.go UserCache
type UserCache interface {
	Get(ctx context.Context, username string) (domain.User, error)
	Set(ctx context.Context, u domain.User) error
	Delete(ctx context.Context, username string) error
}

type RedisUserCache struct {
	cmd        redis.Cmdable
	expiration time.Duration
}

func NewRedisUserCache(cmd redis.Cmdable) UserCache {
	return &RedisUserCache{
		cmd:        cmd,
		expiration: time.Minute * 15,
	}
}

func (r *RedisUserCache) Get(ctx context.Context, username string) (domain.User, error) {
	data, err := r.cmd.Get(ctx, r.key(username)).Result()
	if err != nil {
		return domain.User{}, err
	}
	var u domain.User
	err = json.UnmarshalFromString(data, &u)
	return u, err
}

func (r *RedisUserCache) Set(ctx context.Context, u domain.User) error {
	data, err := json.MarshalToString(u)
	if err != nil {
		return err
	}
	return r.cmd.Set(ctx, r.key(u.Username), data, r.expiration).Err()
}

func (r *RedisUserCache) Delete(ctx context.Context, username string) error {
	return r.cmd.Del(ctx, r.key(username)).Err()
}

func (r *RedisUserCache) key(username string) string {
	return fmt.Sprintf("user:info:%s", username)
}
