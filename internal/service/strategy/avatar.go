package strategy

import (
	"fmt"
	"strings"

	"github.com/Deepfake2025/Deepfake-rear/internal/domain"
)

const maxAvatarEdge = 2000

type AvatarStrategy struct {
	limits
}

func NewAvatarStrategy(cfg Config) *AvatarStrategy {
	return &AvatarStrategy{limits: newLimits(cfg)}
}

func (s *AvatarStrategy) Validate(meta domain.FileMeta) error {
	if err := s.checkSize(meta.FileSize); err != nil {
		return err
	}
	if err := s.checkType(meta.MimeType); err != nil {
		return err
	}
	return s.checkDimensions(meta.Width, meta.Height)
}

func (s *AvatarStrategy) checkType(mimeType string) error {
	if mimeType == "" {
		return invalid(ErrEmptyType, "文件类型不能为空")
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return invalid(ErrUnsupportedType, "仅支持图片文件")
	}
	ext, err := Extension(mimeType)
	if err != nil {
		return invalid(ErrUnsupportedType, "不支持的图片类型: "+mimeType)
	}
	if !s.allows(ext) {
		return invalid(ErrUnsupportedType,
			fmt.Sprintf("仅支持%s格式的图片", strings.Join(s.cfg.AllowedTypes, ", ")))
	}
	return nil
}

// 宽高都传了才检查，传了就必须在 (0, 2000] 里
func (s *AvatarStrategy) checkDimensions(width, height *int) error {
	if width == nil || height == nil {
		return nil
	}
	if *width <= 0 || *height <= 0 {
		return invalid(ErrInvalidDimension, "图片尺寸必须大于0")
	}
	if *width > maxAvatarEdge || *height > maxAvatarEdge {
		return invalid(ErrInvalidDimension,
			fmt.Sprintf("图片尺寸不能超过%dx%d像素", maxAvatarEdge, maxAvatarEdge))
	}
	return nil
}
