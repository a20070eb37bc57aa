package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/Deepfake2025/Deepfake-rear/internal/domain"

	"github.com/redis/go-redis/v9"
)

// UploadCache 待回调的上传记录，key 是签发出去的 AccessKeyId
//
//go:generate mockgen -source=./upload.go -package=cachemocks -destination=./mocks/upload.mock.go UploadCache
type UploadCache interface {
	Set(ctx context.Context, accessKeyID string, entry domain.UploadCacheEntry, ttl time.Duration) error
	// Get 不存在或者已经过期返回 ErrKeyNotExist
	Get(ctx context.Context, accessKeyID string) (domain.UploadCacheEntry, error)
	Delete(ctx context.Context, accessKeyID string) error
}

type RedisUploadCache struct {
	cmd redis.Cmdable
}

func NewRedisUploadCache(cmd redis.Cmdable) UploadCache {
	return &RedisUploadCache{cmd: cmd}
}

func (r *RedisUploadCache) Set(ctx context.Context, accessKeyID string, entry domain.UploadCacheEntry, ttl time.Duration) error {
	data, err := json.MarshalToString(entry)
	if err != nil {
		return err
	}
	return r.cmd.Set(ctx, r.key(accessKeyID), data, ttl).Err()
}

func (r *RedisUploadCache) Get(ctx context.Context, accessKeyID string) (domain.UploadCacheEntry, error) {
	data, err := r.cmd.Get(ctx, r.key(accessKeyID)).Result()
	if err != nil {
		return domain.UploadCacheEntry{}, err
	}
	var entry domain.UploadCacheEntry
	err = json.UnmarshalFromString(data, &entry)
	return entry, err
}

func (r *RedisUploadCache) Delete(ctx context.Context, accessKeyID string) error {
	return r.cmd.Del(ctx, r.key(accessKeyID)).Err()
}

func (r *RedisUploadCache) key(accessKeyID string) string {
	return fmt.Sprintf("upload:sts:%s", accessKeyID)
}
