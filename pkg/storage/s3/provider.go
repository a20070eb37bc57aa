package s3

import (
	"context"
	"fmt"
	"time"

	"github.com/Deepfake2025/Deepfake-rear/pkg/storage"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config S3 协议兼容的存储，私有化部署的时候用 MinIO
type Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	BucketName      string
	// AWS 必填，MinIO 可以不填
	Region string
}

type Provider struct {
	client *minio.Client
	bucket string
}

var _ storage.Provider = (*Provider)(nil)

func NewProvider(c Config) (*Provider, error) {
	client, err := minio.New(c.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.AccessKeyID, c.SecretAccessKey, ""),
		Secure: c.UseSSL,
		Region: c.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("初始化 s3 客户端失败: %w", err)
	}
	return &Provider{client: client, bucket: c.BucketName}, nil
}

func (p *Provider) Delete(ctx context.Context, key string) error {
	err := p.client.RemoveObject(ctx, p.bucket, storage.ObjectKey(key), minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("s3 删除对象失败: %w", err)
	}
	return nil
}

func (p *Provider) GetPrivateURL(ctx context.Context, key string, expire int64) (string, error) {
	u, err := p.client.PresignedGetObject(ctx, p.bucket, storage.ObjectKey(key), time.Duration(expire)*time.Second, nil)
	if err != nil {
		return "", fmt.Errorf("s3 签名失败: %w", err)
	}
	return u.String(), nil
}
