package storage

import (
	"context"
	"strings"
)

// Provider 对象存储。上传走客户端直传（STS 临时凭证），服务端只负责读签名和清理
//
//go:generate mockgen -source=./type.go -package=storagemocks -destination=./mocks/provider.mock.go Provider
type Provider interface {
	// Delete 删除对象，对象不存在不算错误
	Delete(ctx context.Context, key string) error
	// GetPrivateURL 私有对象的临时访问链接，expire 单位秒
	GetPrivateURL(ctx context.Context, key string, expire int64) (string, error)
}

// ObjectKey 对象路径统一以 "/" 开头存库，SDK 需要的是不带前导斜杠的 key
func ObjectKey(path string) string {
	return strings.TrimLeft(path, "/")
}
