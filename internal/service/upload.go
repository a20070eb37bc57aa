package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Deepfake2025/Deepfake-rear/internal/domain"
	"github.com/Deepfake2025/Deepfake-rear/internal/repository"
	"github.com/Deepfake2025/Deepfake-rear/internal/service/strategy"
	"github.com/Deepfake2025/Deepfake-rear/internal/service/sts"
	"github.com/Deepfake2025/Deepfake-rear/pkg/logger"

	jsoniter "github.com/json-iterator/go"
)

type UploadConfig struct {
	// 头像和普通文件可以放在不同的 bucket
	AvatarBucket string
	FileBucket   string
	Region       string
	// OSS 接入点，原样返回给客户端直传用
	Endpoint     string
	AvatarPrefix string
	FilePrefix   string
	// 凭证有效期，上传记录的过期时间是它的两倍
	Duration time.Duration
}

//go:generate mockgen -source=./upload.go -package=svcmocks -destination=./mocks/upload.mock.go UploadService
type UploadService interface {
	// Init 校验元数据，签发只能写一个路径前缀的临时凭证，并记下这次上传
	Init(ctx context.Context, id domain.Identity, category domain.Category, meta domain.FileMeta) (domain.TemporaryCredential, error)
	// Callback 对象存储上传完成的回调，核对通过之后落库并作废上传记录
	Callback(ctx context.Context, category domain.Category, accessKeyID string, bucket string) (domain.UploadCacheEntry, error)
}

type DefaultUploadService struct {
	l         logger.Logger
	users     UserService
	uploads   repository.UploadRepository
	files     repository.FileRepository
	issuer    sts.Service
	selector  *strategy.Selector
	cfg       UploadConfig
	now       func() time.Time
	newSuffix func() string
}

func NewUploadService(l logger.Logger,
	users UserService,
	uploads repository.UploadRepository,
	files repository.FileRepository,
	issuer sts.Service,
	selector *strategy.Selector,
	cfg UploadConfig) UploadService {
	return &DefaultUploadService{
		l:         l,
		users:     users,
		uploads:   uploads,
		files:     files,
		issuer:    issuer,
		selector:  selector,
		cfg:       cfg,
		now:       time.Now,
		newSuffix: randomSuffix,
	}
}

func (svc *DefaultUploadService) Init(ctx context.Context, id domain.Identity, category domain.Category, meta domain.FileMeta) (domain.TemporaryCredential, error) {
	u, err := svc.users.FindByUsername(ctx, id.Username)
	if err != nil {
		return domain.TemporaryCredential{}, err
	}
	if u.ID != id.Uid {
		return domain.TemporaryCredential{}, ErrForbidden
	}

	st, err := svc.selector.For(category)
	if err != nil {
		return domain.TemporaryCredential{}, err
	}
	if err = st.Validate(meta); err != nil {
		return domain.TemporaryCredential{}, err
	}
	ext, err := strategy.Extension(meta.MimeType)
	if err != nil {
		return domain.TemporaryCredential{}, err
	}

	bucket, prefix := svc.bucket(category), svc.prefix(category)
	policy, err := buildPolicy(bucket, prefix)
	if err != nil {
		return domain.TemporaryCredential{}, err
	}
	now := svc.now()
	session := sessionName(id.Username, category, now)
	cred, err := svc.issuer.AssumeRole(ctx, policy, session, svc.cfg.Duration)
	if err != nil {
		svc.l.Error(ctx, "签发 STS 凭证失败",
			logger.Error(err),
			logger.String("username", id.Username),
			logger.String("category", string(category)))
		return domain.TemporaryCredential{}, ErrCredentialUnavailable
	}

	objectPath := fmt.Sprintf("/%s%s-%s-%s.%s", prefix, label(category, meta.FileType), id.Username, svc.newSuffix(), ext)
	entry := domain.UploadCacheEntry{
		Username:       id.Username,
		ObjectPath:     objectPath,
		ExpectedBucket: bucket,
		UploadTime:     now.UnixMilli(),
		Category:       category,
	}
	if category == domain.CategoryFile {
		entry.FileType = meta.FileType
	}
	if err = svc.uploads.Save(ctx, cred.AccessKeyID, entry, 2*svc.cfg.Duration); err != nil {
		return domain.TemporaryCredential{}, err
	}
	svc.l.Info(ctx, "上传记录已缓存",
		logger.String("access_key_id", cred.AccessKeyID),
		logger.String("username", id.Username),
		logger.String("object_path", objectPath))

	return domain.TemporaryCredential{
		AccessKeyID:     cred.AccessKeyID,
		AccessKeySecret: cred.AccessKeySecret,
		SecurityToken:   cred.SecurityToken,
		Expiration:      cred.Expiration,
		Bucket:          bucket,
		Region:          svc.cfg.Region,
		Endpoint:        svc.cfg.Endpoint,
		ObjectPath:      objectPath,
		MaxFileSize:     st.MaxFileSize(),
		AllowedTypes:    st.AllowedTypes(),
	}, nil
}

func (svc *DefaultUploadService) Callback(ctx context.Context, category domain.Category, accessKeyID string, bucket string) (domain.UploadCacheEntry, error) {
	if accessKeyID == "" {
		return domain.UploadCacheEntry{}, ErrUploadNotFound
	}
	entry, err := svc.uploads.Find(ctx, accessKeyID)
	if err != nil {
		return domain.UploadCacheEntry{}, err
	}
	if entry.Category != category {
		return domain.UploadCacheEntry{}, ErrCategoryMismatch
	}
	if entry.ExpectedBucket != bucket {
		svc.l.Warn(ctx, "回调 bucket 不一致",
			logger.String("access_key_id", accessKeyID),
			logger.String("expected", entry.ExpectedBucket),
			logger.String("actual", bucket))
		return domain.UploadCacheEntry{}, ErrBucketMismatch
	}

	switch category {
	case domain.CategoryAvatar:
		err = svc.users.UpdateAvatar(ctx, entry.Username, entry.ObjectPath)
	case domain.CategoryFile:
		_, err = svc.files.Create(ctx, domain.FileRecord{
			Username:   entry.Username,
			ObjectPath: entry.ObjectPath,
			Bucket:     entry.ExpectedBucket,
			FileType:   entry.FileType,
		})
		// 同一个对象已经登记过了
		if errors.Is(err, repository.ErrDuplicateFile) {
			err = nil
		}
	}
	if err != nil {
		return domain.UploadCacheEntry{}, err
	}

	if err = svc.uploads.Delete(ctx, accessKeyID); err != nil {
		// 记录会自己过期
		svc.l.Warn(ctx, "删除上传记录失败", logger.Error(err), logger.String("access_key_id", accessKeyID))
	}
	return entry, nil
}

func (svc *DefaultUploadService) bucket(category domain.Category) string {
	if category == domain.CategoryAvatar {
		return svc.cfg.AvatarBucket
	}
	return svc.cfg.FileBucket
}

func (svc *DefaultUploadService) prefix(category domain.Category) string {
	if category == domain.CategoryAvatar {
		return svc.cfg.AvatarPrefix
	}
	return svc.cfg.FilePrefix
}

// label 对象名的前缀，普通文件用客户端给的 fileType，不是纯字母数字就用 file
func label(category domain.Category, fileType string) string {
	if category == domain.CategoryAvatar {
		return string(domain.CategoryAvatar)
	}
	if fileType == "" || len(fileType) > maxLabelLen || strings.IndexFunc(fileType, notAlphanumeric) >= 0 {
		return string(domain.CategoryFile)
	}
	return fileType
}

const maxLabelLen = 32

func notAlphanumeric(r rune) bool {
	return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
}

type policyDocument struct {
	Version   string            `json:"Version"`
	Statement []policyStatement `json:"Statement"`
}

type policyStatement struct {
	Effect   string   `json:"Effect"`
	Action   []string `json:"Action"`
	Resource []string `json:"Resource"`
}

// buildPolicy 只允许往 bucket 的 prefix 下面写
func buildPolicy(bucket, prefix string) (string, error) {
	return jsoniter.MarshalToString(policyDocument{
		Version: "1",
		Statement: []policyStatement{{
			Effect:   "Allow",
			Action:   []string{"oss:PutObject"},
			Resource: []string{fmt.Sprintf("acs:oss:*:*:%s/%s*", bucket, prefix)},
		}},
	})
}

const maxSessionNameLen = 64

// sessionName 阿里云要求 2-64 位，只能有字母数字和 .@-_
func sessionName(username string, category domain.Category, now time.Time) string {
	raw := fmt.Sprintf("%s-%s-%d", username, category, now.UnixMilli())
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '@' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, raw)
	if len(name) > maxSessionNameLen {
		name = name[len(name)-maxSessionNameLen:]
	}
	return name
}
