package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Deepfake2025/Deepfake-rear/internal/domain"
	"github.com/Deepfake2025/Deepfake-rear/internal/repository"
	"github.com/Deepfake2025/Deepfake-rear/pkg/logger"
	"github.com/Deepfake2025/Deepfake-rear/pkg/storage"

	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultNickname = "新用户"
	// 生成用户名撞车的时候重试几次
	usernameAttempts = 3
)

type UserConfig struct {
	// 头像展示地址的前缀，例如 http://localhost:8080
	AvatarBaseURL string
	// 头像签名链接的有效期，秒
	AvatarURLExpire int64
}

//go:generate mockgen -source=./user.go -package=svcmocks -destination=./mocks/user.mock.go UserService
type UserService interface {
	Signup(ctx context.Context, email string, password string) (domain.User, error)
	Login(ctx context.Context, email string, password string) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	Profile(ctx context.Context, username string) (domain.UserProfile, error)
	// UpdateProfile 只改有变化的昵称和手机号，空字符串表示不改
	UpdateProfile(ctx context.Context, username string, nickname string, phone string) error
	// UpdateAvatar 换头像之后顺手删掉旧头像对象，删除失败只记日志
	UpdateAvatar(ctx context.Context, username string, avatar string) error
	// FetchAvatar 没有头像的时候返回空字符串
	FetchAvatar(ctx context.Context, username string) (string, error)
}

type DefaultUserService struct {
	l       logger.Logger
	repo    repository.UserRepository
	storage storage.Provider
	cfg     UserConfig
	suffix  func() string
}

func NewUserService(log logger.Logger, repo repository.UserRepository, p storage.Provider, cfg UserConfig) UserService {
	return &DefaultUserService{
		l:       log,
		repo:    repo,
		storage: p,
		cfg:     cfg,
		suffix:  randomSuffix,
	}
}

func randomSuffix() string {
	return strings.ToLower(shortuuid.New()[:8])
}

func (svc *DefaultUserService) Signup(ctx context.Context, email string, password string) (domain.User, error) {
	_, err := svc.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.User{}, ErrDuplicateEmail
	case !errors.Is(err, repository.ErrUserNotFound):
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	u := domain.User{
		Email:    email,
		Password: string(hash),
		Nickname: defaultNickname,
	}
	prefix, _, _ := strings.Cut(email, "@")
	for i := 0; i < usernameAttempts; i++ {
		u.Username = prefix + "_" + svc.suffix()
		err = svc.repo.Create(ctx, u)
		if !errors.Is(err, repository.ErrDuplicateUsername) {
			break
		}
		svc.l.Warn(ctx, "生成的用户名冲突，重新生成", logger.String("username", u.Username))
	}
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (svc *DefaultUserService) Login(ctx context.Context, email string, password string) (domain.User, error) {
	u, err := svc.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, ErrInvalidUserOrPassword
	}
	if err != nil {
		return domain.User{}, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return domain.User{}, ErrInvalidUserOrPassword
	}
	return u, nil
}

func (svc *DefaultUserService) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	return svc.repo.FindByUsername(ctx, username)
}

func (svc *DefaultUserService) Profile(ctx context.Context, username string) (domain.UserProfile, error) {
	u, err := svc.repo.FindByUsername(ctx, username)
	if err != nil {
		return domain.UserProfile{}, err
	}
	p := domain.UserProfile{
		Email:    u.Email,
		Nickname: u.Nickname,
		Phone:    u.Phone,
	}
	if u.Avatar != "" {
		p.AvatarURL = strings.TrimRight(svc.cfg.AvatarBaseURL, "/") + u.Avatar
	}
	return p, nil
}

func (svc *DefaultUserService) UpdateProfile(ctx context.Context, username string, nickname string, phone string) error {
	u, err := svc.repo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	changed := domain.User{Username: username}
	if nickname != "" && nickname != u.Nickname {
		changed.Nickname = nickname
	}
	if phone != "" && phone != u.Phone {
		changed.Phone = phone
	}
	if changed.Nickname == "" && changed.Phone == "" {
		return ErrNothingToUpdate
	}
	return svc.repo.UpdateProfile(ctx, changed)
}

func (svc *DefaultUserService) UpdateAvatar(ctx context.Context, username string, avatar string) error {
	u, err := svc.repo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if err = svc.repo.UpdateAvatar(ctx, username, avatar); err != nil {
		return err
	}
	old := u.Avatar
	if old == "" || old == avatar {
		return nil
	}
	if err = svc.storage.Delete(ctx, old); err != nil {
		svc.l.Warn(ctx, "头像已更新，删除旧头像失败",
			logger.Error(err),
			logger.String("username", username),
			logger.String("old_avatar", old))
	}
	return nil
}

func (svc *DefaultUserService) FetchAvatar(ctx context.Context, username string) (string, error) {
	u, err := svc.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u.Avatar == "" {
		return "", nil
	}
	return svc.storage.GetPrivateURL(ctx, u.Avatar, svc.cfg.AvatarURLExpire)
}
