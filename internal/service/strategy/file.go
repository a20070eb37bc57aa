package strategy

import (
	"fmt"
	"strings"

	"github.com/Deepfake2025/Deepfake-rear/internal/domain"
)

// FileStrategy 普通文件，目前只收音视频
type FileStrategy struct {
	limits
}

func NewFileStrategy(cfg Config) *FileStrategy {
	return &FileStrategy{limits: newLimits(cfg)}
}

func (s *FileStrategy) Validate(meta domain.FileMeta) error {
	if err := s.checkSize(meta.FileSize); err != nil {
		return err
	}
	mimeType := meta.MimeType
	if mimeType == "" {
		return invalid(ErrEmptyType, "文件类型不能为空")
	}
	if !strings.HasPrefix(mimeType, "video/") && !strings.HasPrefix(mimeType, "audio/") {
		return invalid(ErrUnsupportedType, "仅支持视频和音频文件")
	}
	ext, err := Extension(mimeType)
	if err != nil {
		return invalid(ErrUnsupportedType, "不支持的文件类型: "+mimeType)
	}
	if !s.allows(ext) {
		return invalid(ErrUnsupportedType,
			fmt.Sprintf("仅支持%s格式的文件", strings.Join(s.cfg.AllowedTypes, ", ")))
	}
	return nil
}
