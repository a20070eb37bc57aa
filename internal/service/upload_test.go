package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Deepfake2025/Deepfake-rear/internal/domain"
	"github.com/Deepfake2025/Deepfake-rear/internal/repository"
	repomocks "github.com/Deepfake2025/Deepfake-rear/internal/repository/mocks"
	svcmocks "github.com/Deepfake2025/Deepfake-rear/internal/service/mocks"
	"github.com/Deepfake2025/Deepfake-rear/internal/service/strategy"
	"github.com/Deepfake2025/Deepfake-rear/internal/service/sts"
	stsmocks "github.com/Deepfake2025/Deepfake-rear/internal/service/sts/mocks"
	"github.com/Deepfake2025/Deepfake-rear/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testNow    = time.UnixMilli(1700000000000)
	testExpire = testNow.Add(time.Hour)
	alice      = domain.Identity{Uid: 1, Username: "alice_1a2b3c4d"}
)

type uploadMocks struct {
	users   *svcmocks.MockUserService
	uploads *repomocks.MockUploadRepository
	files   *repomocks.MockFileRepository
	issuer  *stsmocks.MockService
}

func newTestUploadService(ctrl *gomock.Controller) (*DefaultUploadService, uploadMocks) {
	m := uploadMocks{
		users:   svcmocks.NewMockUserService(ctrl),
		uploads: repomocks.NewMockUploadRepository(ctrl),
		files:   repomocks.NewMockFileRepository(ctrl),
		issuer:  stsmocks.NewMockService(ctrl),
	}
	selector := strategy.NewSelector(
		strategy.Config{MaxFileSize: 2 * 1024 * 1024, AllowedTypes: []string{"jpg", "jpeg", "png", "gif"}},
		strategy.Config{MaxFileSize: 500 * 1024 * 1024, AllowedTypes: []string{"mp4", "mov", "mp3"}},
	)
	svc := NewUploadService(logger.NewNopLogger(), m.users, m.uploads, m.files, m.issuer, selector, UploadConfig{
		AvatarBucket: "deepfake",
		FileBucket:   "deepfake-files",
		Region:       "cn-guangzhou",
		Endpoint:     "oss-cn-guangzhou.aliyuncs.com",
		AvatarPrefix: "avatars/",
		FilePrefix:   "files/",
		Duration:     time.Hour,
	}).(*DefaultUploadService)
	svc.now = func() time.Time { return testNow }
	svc.newSuffix = func() string { return "9f8e7d6c" }
	return svc, m
}

func TestDefaultUploadService_Init(t *testing.T) {
	cred := sts.Credential{
		AccessKeyID:     "STS.abc",
		AccessKeySecret: "secret",
		SecurityToken:   "token",
		Expiration:      testExpire,
	}
	testCases := []struct {
		name     string
		mock     func(m uploadMocks)
		id       domain.Identity
		category domain.Category
		meta     domain.FileMeta
		want     domain.TemporaryCredential
		wantErr  error
	}{
		{
			name:     "头像签发成功",
			id:       alice,
			category: domain.CategoryAvatar,
			meta:     domain.FileMeta{MimeType: "image/png", FileSize: 500000},
			mock: func(m uploadMocks) {
				m.users.EXPECT().FindByUsername(gomock.Any(), "alice_1a2b3c4d").Return(domain.User{ID: 1, Username: "alice_1a2b3c4d"}, nil)
				m.issuer.EXPECT().AssumeRole(gomock.Any(),
					`{"Version":"1","Statement":[{"Effect":"Allow","Action":["oss:PutObject"],"Resource":["acs:oss:*:*:deepfake/avatars/*"]}]}`,
					"alice_1a2b3c4d-avatar-1700000000000", time.Hour).Return(cred, nil)
				m.uploads.EXPECT().Save(gomock.Any(), "STS.abc", domain.UploadCacheEntry{
					Username:       "alice_1a2b3c4d",
					ObjectPath:     "/avatars/avatar-alice_1a2b3c4d-9f8e7d6c.png",
					ExpectedBucket: "deepfake",
					UploadTime:     1700000000000,
					Category:       domain.CategoryAvatar,
				}, 2*time.Hour).Return(nil)
			},
			want: domain.TemporaryCredential{
				AccessKeyID:     "STS.abc",
				AccessKeySecret: "secret",
				SecurityToken:   "token",
				Expiration:      testExpire,
				Bucket:          "deepfake",
				Region:          "cn-guangzhou",
				Endpoint:        "oss-cn-guangzhou.aliyuncs.com",
				ObjectPath:      "/avatars/avatar-alice_1a2b3c4d-9f8e7d6c.png",
				MaxFileSize:     2 * 1024 * 1024,
				AllowedTypes:    []string{"jpg", "jpeg", "png", "gif"},
			},
		},
		{
			name:     "普通文件签发成功",
			id:       alice,
			category: domain.CategoryFile,
			meta:     domain.FileMeta{MimeType: "video/quicktime", FileSize: 1024, FileType: "video"},
			mock: func(m uploadMocks) {
				m.users.EXPECT().FindByUsername(gomock.Any(), "alice_1a2b3c4d").Return(domain.User{ID: 1}, nil)
				m.issuer.EXPECT().AssumeRole(gomock.Any(),
					`{"Version":"1","Statement":[{"Effect":"Allow","Action":["oss:PutObject"],"Resource":["acs:oss:*:*:deepfake-files/files/*"]}]}`,
					"alice_1a2b3c4d-file-1700000000000", time.Hour).Return(cred, nil)
				m.uploads.EXPECT().Save(gomock.Any(), "STS.abc", domain.UploadCacheEntry{
					Username:       "alice_1a2b3c4d",
					ObjectPath:     "/files/video-alice_1a2b3c4d-9f8e7d6c.mov",
					ExpectedBucket: "deepfake-files",
					UploadTime:     1700000000000,
					Category:       domain.CategoryFile,
					FileType:       "video",
				}, 2*time.Hour).Return(nil)
			},
			want: domain.TemporaryCredential{
				AccessKeyID:     "STS.abc",
				AccessKeySecret: "secret",
				SecurityToken:   "token",
				Expiration:      testExpire,
				Bucket:          "deepfake-files",
				Region:          "cn-guangzhou",
				Endpoint:        "oss-cn-guangzhou.aliyuncs.com",
				ObjectPath:      "/files/video-alice_1a2b3c4d-9f8e7d6c.mov",
				MaxFileSize:     500 * 1024 * 1024,
				AllowedTypes:    []string{"mp4", "mov", "mp3"},
			},
		},
		{
			name:     "用户不存在",
			id:       alice,
			category: domain.CategoryAvatar,
			meta:     domain.FileMeta{MimeType: "image/png", FileSize: 500000},
			mock: func(m uploadMocks) {
				m.users.EXPECT().FindByUsername(gomock.Any(), "alice_1a2b3c4d").Return(domain.User{}, repository.ErrUserNotFound)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name:     "token 里的 uid 和用户对不上",
			id:       domain.Identity{Uid: 2, Username: "alice_1a2b3c4d"},
			category: domain.CategoryAvatar,
			meta:     domain.FileMeta{MimeType: "image/png", FileSize: 500000},
			mock: func(m uploadMocks) {
				m.users.EXPECT().FindByUsername(gomock.Any(), "alice_1a2b3c4d").Return(domain.User{ID: 1}, nil)
			},
			wantErr: ErrForbidden,
		},
		{
			name:     "STS 不可用",
			id:       alice,
			category: domain.CategoryAvatar,
			meta:     domain.FileMeta{MimeType: "image/png", FileSize: 500000},
			mock: func(m uploadMocks) {
				m.users.EXPECT().FindByUsername(gomock.Any(), "alice_1a2b3c4d").Return(domain.User{ID: 1}, nil)
				m.issuer.EXPECT().AssumeRole(gomock.Any(), gomock.Any(), gomock.Any(), time.Hour).
					Return(sts.Credential{}, errors.New("InternalError"))
			},
			wantErr: ErrCredentialUnavailable,
		},
		{
			name:     "缓存写失败",
			id:       alice,
			category: domain.CategoryAvatar,
			meta:     domain.FileMeta{MimeType: "image/png", FileSize: 500000},
			mock: func(m uploadMocks) {
				m.users.EXPECT().FindByUsername(gomock.Any(), "alice_1a2b3c4d").Return(domain.User{ID: 1}, nil)
				m.issuer.EXPECT().AssumeRole(gomock.Any(), gomock.Any(), gomock.Any(), time.Hour).Return(cred, nil)
				m.uploads.EXPECT().Save(gomock.Any(), "STS.abc", gomock.Any(), 2*time.Hour).Return(errors.New("redis error"))
			},
			wantErr: errors.New("redis error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newTestUploadService(ctrl)
			tc.mock(m)
			got, err := svc.Init(context.Background(), tc.id, tc.category, tc.meta)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDefaultUploadService_Init_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestUploadService(ctrl)
	m.users.EXPECT().FindByUsername(gomock.Any(), "alice_1a2b3c4d").Return(domain.User{ID: 1}, nil)

	// 校验不过不会去调 STS
	_, err := svc.Init(context.Background(), alice, domain.CategoryAvatar,
		domain.FileMeta{MimeType: "image/png", FileSize: 3 * 1024 * 1024})
	var verr *strategy.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, strategy.ErrInvalidSize)
}

func TestDefaultUploadService_Callback(t *testing.T) {
	avatarEntry := domain.UploadCacheEntry{
		Username:       "alice_1a2b3c4d",
		ObjectPath:     "/avatars/avatar-alice_1a2b3c4d-9f8e7d6c.png",
		ExpectedBucket: "deepfake",
		UploadTime:     1700000000000,
		Category:       domain.CategoryAvatar,
	}
	fileEntry := domain.UploadCacheEntry{
		Username:       "alice_1a2b3c4d",
		ObjectPath:     "/files/video-alice_1a2b3c4d-9f8e7d6c.mp4",
		ExpectedBucket: "deepfake-files",
		UploadTime:     1700000000000,
		Category:       domain.CategoryFile,
		FileType:       "video",
	}
	fileRecord := domain.FileRecord{
		Username:   "alice_1a2b3c4d",
		ObjectPath: "/files/video-alice_1a2b3c4d-9f8e7d6c.mp4",
		Bucket:     "deepfake-files",
		FileType:   "video",
	}

	testCases := []struct {
		name        string
		mock        func(m uploadMocks)
		category    domain.Category
		accessKeyID string
		bucket      string
		want        domain.UploadCacheEntry
		wantErr     error
	}{
		{
			name:        "头像回调成功",
			category:    domain.CategoryAvatar,
			accessKeyID: "STS.abc",
			bucket:      "deepfake",
			mock: func(m uploadMocks) {
				m.uploads.EXPECT().Find(gomock.Any(), "STS.abc").Return(avatarEntry, nil)
				m.users.EXPECT().UpdateAvatar(gomock.Any(), "alice_1a2b3c4d", "/avatars/avatar-alice_1a2b3c4d-9f8e7d6c.png").Return(nil)
				m.uploads.EXPECT().Delete(gomock.Any(), "STS.abc").Return(nil)
			},
			want: avatarEntry,
		},
		{
			name:        "文件回调成功，删除记录失败不影响结果",
			category:    domain.CategoryFile,
			accessKeyID: "STS.abc",
			bucket:      "deepfake-files",
			mock: func(m uploadMocks) {
				m.uploads.EXPECT().Find(gomock.Any(), "STS.abc").Return(fileEntry, nil)
				m.files.EXPECT().Create(gomock.Any(), fileRecord).Return(int64(1), nil)
				m.uploads.EXPECT().Delete(gomock.Any(), "STS.abc").Return(errors.New("redis error"))
			},
			want: fileEntry,
		},
		{
			name:        "文件已经登记过",
			category:    domain.CategoryFile,
			accessKeyID: "STS.abc",
			bucket:      "deepfake-files",
			mock: func(m uploadMocks) {
				m.uploads.EXPECT().Find(gomock.Any(), "STS.abc").Return(fileEntry, nil)
				m.files.EXPECT().Create(gomock.Any(), fileRecord).Return(int64(0), repository.ErrDuplicateFile)
				m.uploads.EXPECT().Delete(gomock.Any(), "STS.abc").Return(nil)
			},
			want: fileEntry,
		},
		{
			name:     "没有 accessKeyId",
			category: domain.CategoryAvatar,
			bucket:   "deepfake",
			mock:     func(m uploadMocks) {},
			wantErr:  ErrUploadNotFound,
		},
		{
			name:        "未知的 accessKeyId",
			category:    domain.CategoryAvatar,
			accessKeyID: "STS.unknown",
			bucket:      "deepfake",
			mock: func(m uploadMocks) {
				m.uploads.EXPECT().Find(gomock.Any(), "STS.unknown").Return(domain.UploadCacheEntry{}, repository.ErrUploadNotFound)
			},
			wantErr: ErrUploadNotFound,
		},
		{
			name:        "bucket 不一致",
			category:    domain.CategoryAvatar,
			accessKeyID: "STS.abc",
			bucket:      "other",
			mock: func(m uploadMocks) {
				m.uploads.EXPECT().Find(gomock.Any(), "STS.abc").Return(avatarEntry, nil)
			},
			wantErr: ErrBucketMismatch,
		},
		{
			name:        "文件回调带的是头像 bucket",
			category:    domain.CategoryFile,
			accessKeyID: "STS.abc",
			bucket:      "deepfake",
			mock: func(m uploadMocks) {
				m.uploads.EXPECT().Find(gomock.Any(), "STS.abc").Return(fileEntry, nil)
			},
			wantErr: ErrBucketMismatch,
		},
		{
			name:        "用文件的凭证回调头像接口",
			category:    domain.CategoryAvatar,
			accessKeyID: "STS.abc",
			bucket:      "deepfake",
			mock: func(m uploadMocks) {
				m.uploads.EXPECT().Find(gomock.Any(), "STS.abc").Return(fileEntry, nil)
			},
			wantErr: ErrCategoryMismatch,
		},
		{
			name:        "更新头像失败，保留上传记录",
			category:    domain.CategoryAvatar,
			accessKeyID: "STS.abc",
			bucket:      "deepfake",
			mock: func(m uploadMocks) {
				m.uploads.EXPECT().Find(gomock.Any(), "STS.abc").Return(avatarEntry, nil)
				m.users.EXPECT().UpdateAvatar(gomock.Any(), "alice_1a2b3c4d", gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newTestUploadService(ctrl)
			tc.mock(m)
			got, err := svc.Callback(context.Background(), tc.category, tc.accessKeyID, tc.bucket)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSessionName(t *testing.T) {
	assert.Equal(t, "alice_1a2b3c4d-avatar-1700000000000",
		sessionName("alice_1a2b3c4d", domain.CategoryAvatar, testNow))
	// 邮箱前缀里可能有 + 之类的字符
	assert.Equal(t, "a-b_1a2b3c4d-file-1700000000000",
		sessionName("a+b_1a2b3c4d", domain.CategoryFile, testNow))

	long := sessionName("averyveryveryveryveryveryveryveryverylongname_1a2b3c4d", domain.CategoryAvatar, testNow)
	assert.Len(t, long, maxSessionNameLen)
}

func TestLabel(t *testing.T) {
	testCases := []struct {
		name     string
		category domain.Category
		fileType string
		want     string
	}{
		{name: "头像固定用 avatar", category: domain.CategoryAvatar, fileType: "video", want: "avatar"},
		{name: "字母数字原样保留", category: domain.CategoryFile, fileType: "video2", want: "video2"},
		{name: "没传", category: domain.CategoryFile, want: "file"},
		{name: "路径穿越", category: domain.CategoryFile, fileType: "../etc", want: "file"},
		{name: "连字符会打乱对象名", category: domain.CategoryFile, fileType: "video-alice", want: "file"},
		{name: "空白", category: domain.CategoryFile, fileType: "vid eo", want: "file"},
		{name: "非 ASCII", category: domain.CategoryFile, fileType: "视频", want: "file"},
		{name: "太长", category: domain.CategoryFile, fileType: strings.Repeat("a", 33), want: "file"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, label(tc.category, tc.fileType))
		})
	}
}
