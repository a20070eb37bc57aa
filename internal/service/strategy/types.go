package strategy

import (
	"fmt"
	"strings"

	"github.com/Deepfake2025/Deepfake-rear/internal/domain"

	"github.com/ecodeclub/ekit/set"
)

// Strategy 上传前的元数据校验，每个分类一个实现
type Strategy interface {
	Validate(meta domain.FileMeta) error
	// MaxFileSize 和 AllowedTypes 会原样带回给客户端
	MaxFileSize() int64
	AllowedTypes() []string
}

type Config struct {
	MaxFileSize  int64
	AllowedTypes []string
}

// Selector 按分类取策略，分类是封闭的，不支持运行时注册
type Selector struct {
	avatar Strategy
	file   Strategy
}

func NewSelector(avatar, file Config) *Selector {
	return &Selector{
		avatar: NewAvatarStrategy(avatar),
		file:   NewFileStrategy(file),
	}
}

func (s *Selector) For(c domain.Category) (Strategy, error) {
	switch c {
	case domain.CategoryAvatar:
		return s.avatar, nil
	case domain.CategoryFile:
		return s.file, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}
}

// limits 两个策略共用的大小和白名单检查
type limits struct {
	cfg     Config
	allowed *set.MapSet[string]
}

func newLimits(cfg Config) limits {
	allowed := set.NewMapSet[string](len(cfg.AllowedTypes))
	for _, t := range cfg.AllowedTypes {
		allowed.Add(strings.ToLower(t))
	}
	return limits{cfg: cfg, allowed: allowed}
}

func (l limits) MaxFileSize() int64 {
	return l.cfg.MaxFileSize
}

func (l limits) AllowedTypes() []string {
	return l.cfg.AllowedTypes
}

func (l limits) checkSize(size int64) error {
	if size <= 0 {
		return invalid(ErrInvalidSize, "文件大小必须大于0")
	}
	if size > l.cfg.MaxFileSize {
		return invalid(ErrInvalidSize, fmt.Sprintf("文件大小不能超过%dMB", l.cfg.MaxFileSize/1024/1024))
	}
	return nil
}

func (l limits) allows(ext string) bool {
	return l.allowed.Exist(strings.ToLower(ext))
}
