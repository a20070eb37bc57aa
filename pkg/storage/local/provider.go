package local

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Deepfake2025/Deepfake-rear/pkg/storage"
)

// Config 本地存储，开发环境用
type Config struct {
	// 物理根目录，例如 "./uploads"
	RootPath string
	// 外部访问前缀，例如 "http://localhost:8080/static"
	BaseURL string
}

type Provider struct {
	config Config
}

var _ storage.Provider = (*Provider)(nil)

func NewProvider(c Config) (*Provider, error) {
	absPath, err := filepath.Abs(c.RootPath)
	if err != nil {
		return nil, fmt.Errorf("解析本地存储目录失败: %w", err)
	}
	if err = os.MkdirAll(absPath, 0o755); err != nil {
		return nil, fmt.Errorf("创建本地存储目录失败: %w", err)
	}
	c.RootPath = absPath
	return &Provider{config: c}, nil
}

var errInvalidKey = errors.New("非法的对象路径")

func (p *Provider) fullPath(key string) (string, error) {
	key = storage.ObjectKey(key)
	if key == "" || strings.Contains(key, "..") {
		return "", errInvalidKey
	}
	return filepath.Join(p.config.RootPath, filepath.FromSlash(key)), nil
}

func (p *Provider) Delete(ctx context.Context, key string) error {
	fullPath, err := p.fullPath(key)
	if err != nil {
		return err
	}
	err = os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("删除本地文件失败: %w", err)
	}
	return nil
}

// GetPrivateURL 本地静态目录没有签名能力，直接返回公开地址
func (p *Provider) GetPrivateURL(ctx context.Context, key string, expire int64) (string, error) {
	if _, err := p.fullPath(key); err != nil {
		return "", err
	}
	return strings.TrimRight(p.config.BaseURL, "/") + "/" + storage.ObjectKey(key), nil
}
