package strategy

import (
	"testing"

	"github.com/Deepfake2025/Deepfake-rear/internal/domain"

	"github.com/ecodeclub/ekit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	avatarMax = 2 * 1024 * 1024
	fileMax   = 500 * 1024 * 1024
)

func newTestSelector() *Selector {
	return NewSelector(
		Config{MaxFileSize: avatarMax, AllowedTypes: []string{"jpg", "jpeg", "png", "gif"}},
		Config{MaxFileSize: fileMax, AllowedTypes: []string{"mp4", "avi", "mov", "mkv", "webm", "mp3", "wav", "aac", "ogg", "flac"}},
	)
}

func TestAvatarStrategy_Validate(t *testing.T) {
	s, err := newTestSelector().For(domain.CategoryAvatar)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		meta     domain.FileMeta
		wantKind error
	}{
		{name: "png", meta: domain.FileMeta{MimeType: "image/png", FileSize: 500000}},
		{name: "刚好等于上限", meta: domain.FileMeta{MimeType: "image/jpeg", FileSize: avatarMax}},
		{name: "超过上限", meta: domain.FileMeta{MimeType: "image/png", FileSize: avatarMax + 1}, wantKind: ErrInvalidSize},
		{name: "大小为0", meta: domain.FileMeta{MimeType: "image/png", FileSize: 0}, wantKind: ErrInvalidSize},
		{name: "大小为负", meta: domain.FileMeta{MimeType: "image/png", FileSize: -1}, wantKind: ErrInvalidSize},
		{name: "类型为空", meta: domain.FileMeta{FileSize: 100}, wantKind: ErrEmptyType},
		{name: "不是图片", meta: domain.FileMeta{MimeType: "video/mp4", FileSize: 100}, wantKind: ErrUnsupportedType},
		{name: "不在白名单", meta: domain.FileMeta{MimeType: "image/webp", FileSize: 100}, wantKind: ErrUnsupportedType},
		{name: "尺寸合法", meta: domain.FileMeta{MimeType: "image/png", FileSize: 100, Width: ekit.ToPtr(2000), Height: ekit.ToPtr(2000)}},
		{name: "只传了宽", meta: domain.FileMeta{MimeType: "image/png", FileSize: 100, Width: ekit.ToPtr(5000)}},
		{name: "尺寸超限", meta: domain.FileMeta{MimeType: "image/png", FileSize: 100, Width: ekit.ToPtr(2001), Height: ekit.ToPtr(100)}, wantKind: ErrInvalidDimension},
		{name: "尺寸为负", meta: domain.FileMeta{MimeType: "image/png", FileSize: 100, Width: ekit.ToPtr(-1), Height: ekit.ToPtr(100)}, wantKind: ErrInvalidDimension},
		{name: "宽传了0", meta: domain.FileMeta{MimeType: "image/png", FileSize: 100, Width: ekit.ToPtr(0), Height: ekit.ToPtr(100)}, wantKind: ErrInvalidDimension},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.Validate(tc.meta)
			if tc.wantKind == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantKind)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Msg)
		})
	}
}

func TestFileStrategy_Validate(t *testing.T) {
	s, err := newTestSelector().For(domain.CategoryFile)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		meta     domain.FileMeta
		wantKind error
	}{
		{name: "mp4", meta: domain.FileMeta{MimeType: "video/mp4", FileSize: 1024}},
		{name: "mov", meta: domain.FileMeta{MimeType: "video/quicktime", FileSize: 1024}},
		{name: "mp3", meta: domain.FileMeta{MimeType: "audio/mpeg", FileSize: 1024}},
		{name: "刚好等于上限", meta: domain.FileMeta{MimeType: "video/mp4", FileSize: fileMax}},
		{name: "超过上限", meta: domain.FileMeta{MimeType: "video/mp4", FileSize: fileMax + 1}, wantKind: ErrInvalidSize},
		{name: "图片不收", meta: domain.FileMeta{MimeType: "image/png", FileSize: 1024}, wantKind: ErrUnsupportedType},
		{name: "wmv 不在白名单", meta: domain.FileMeta{MimeType: "video/x-ms-wmv", FileSize: 1024}, wantKind: ErrUnsupportedType},
		{name: "类型为空", meta: domain.FileMeta{FileSize: 1024}, wantKind: ErrEmptyType},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.Validate(tc.meta)
			if tc.wantKind == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantKind)
		})
	}
}

func TestSelector_For(t *testing.T) {
	sel := newTestSelector()
	s, err := sel.For(domain.CategoryAvatar)
	require.NoError(t, err)
	assert.Equal(t, int64(avatarMax), s.MaxFileSize())
	assert.Equal(t, []string{"jpg", "jpeg", "png", "gif"}, s.AllowedTypes())

	_, err = sel.For(domain.Category("banner"))
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
