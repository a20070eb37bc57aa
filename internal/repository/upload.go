package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Deepfake2025/Deepfake-rear/internal/domain"
	"github.com/Deepfake2025/Deepfake-rear/internal/repository/cache"
)

var ErrUploadNotFound = errors.New("上传记录不存在或已过期")

//go:generate mockgen -source=./upload.go -package=repomocks -destination=./mocks/upload.mock.go UploadRepository
type UploadRepository interface {
	Save(ctx context.Context, accessKeyID string, entry domain.UploadCacheEntry, ttl time.Duration) error
	// Find 没有记录返回 ErrUploadNotFound，不会去别的地方兜底
	Find(ctx context.Context, accessKeyID string) (domain.UploadCacheEntry, error)
	Delete(ctx context.Context, accessKeyID string) error
}

type CachedUploadRepository struct {
	cache cache.UploadCache
}

func NewCachedUploadRepository(c cache.UploadCache) UploadRepository {
	return &CachedUploadRepository{cache: c}
}

func (r *CachedUploadRepository) Save(ctx context.Context, accessKeyID string, entry domain.UploadCacheEntry, ttl time.Duration) error {
	return r.cache.Set(ctx, accessKeyID, entry, ttl)
}

func (r *CachedUploadRepository) Find(ctx context.Context, accessKeyID string) (domain.UploadCacheEntry, error) {
	entry, err := r.cache.Get(ctx, accessKeyID)
	if errors.Is(err, cache.ErrKeyNotExist) {
		return domain.UploadCacheEntry{}, ErrUploadNotFound
	}
	return entry, err
}

func (r *CachedUploadRepository) Delete(ctx context.Context, accessKeyID string) error {
	return r.cache.Delete(ctx, accessKeyID)
}
