package oss

import (
	"context"
	"fmt"

	"github.com/Deepfake2025/Deepfake-rear/pkg/storage"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// Config 阿里云 OSS，和签发 STS 用的是同一个 bucket
type Config struct {
	Endpoint        string
	AccessKeyID     string
	AccessKeySecret string
	BucketName      string
}

// bucket 只用到了 oss.Bucket 的这两个方法，测试里可以替换掉
type bucket interface {
	DeleteObject(objectKey string, options ...oss.Option) error
	SignURL(objectKey string, method oss.HTTPMethod, expiredInSec int64, options ...oss.Option) (string, error)
}

type Provider struct {
	bucket bucket
}

var _ storage.Provider = (*Provider)(nil)

func NewProvider(c Config) (*Provider, error) {
	client, err := oss.New(c.Endpoint, c.AccessKeyID, c.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("初始化 oss 客户端失败: %w", err)
	}
	// 只拿句柄，不会发请求
	b, err := client.Bucket(c.BucketName)
	if err != nil {
		return nil, fmt.Errorf("获取 oss bucket 失败: %w", err)
	}
	return &Provider{bucket: b}, nil
}

func (p *Provider) Delete(ctx context.Context, key string) error {
	err := p.bucket.DeleteObject(storage.ObjectKey(key), oss.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("oss 删除对象失败: %w", err)
	}
	return nil
}

// GetPrivateURL 签名在本地计算，不发请求
func (p *Provider) GetPrivateURL(ctx context.Context, key string, expire int64) (string, error) {
	signed, err := p.bucket.SignURL(storage.ObjectKey(key), oss.HTTPGet, expire)
	if err != nil {
		return "", fmt.Errorf("oss 签名失败: %w", err)
	}
	return signed, nil
}
