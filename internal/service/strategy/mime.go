package strategy

import (
	"fmt"
	"strings"
)

var mimeExtensions = map[string]string{
	"image/jpeg":       "jpg",
	"image/jpg":        "jpg",
	"image/png":        "png",
	"image/gif":        "gif",
	"image/webp":       "webp",
	"video/mp4":        "mp4",
	"video/avi":        "avi",
	"video/quicktime":  "mov",
	"video/x-ms-wmv":   "wmv",
	"video/x-flv":      "flv",
	"video/webm":       "webm",
	"video/x-matroska": "mkv",
	"audio/mpeg":       "mp3",
	"audio/mp3":        "mp3",
	"audio/wav":        "wav",
	"audio/aac":        "aac",
	"audio/ogg":        "ogg",
	"audio/flac":       "flac",
}

// Extension MIME 类型转扩展名。表里没有的取子类型，格式不对直接报错
func Extension(mimeType string) (string, error) {
	if ext, ok := mimeExtensions[mimeType]; ok {
		return ext, nil
	}
	parts := strings.Split(mimeType, "/")
	if len(parts) == 2 && parts[0] != "" && parts[1] != "" {
		return strings.ToLower(parts[1]), nil
	}
	return "", invalid(ErrUnsupportedType, fmt.Sprintf("不支持的 MIME 类型: %q", mimeType))
}
