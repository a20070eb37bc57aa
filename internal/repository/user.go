package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Deepfake2025/Deepfake-rear/internal/domain"
	"github.com/Deepfake2025/Deepfake-rear/internal/repository/cache"
	"github.com/Deepfake2025/Deepfake-rear/internal/repository/dao"
	"github.com/Deepfake2025/Deepfake-rear/pkg/logger"
)

var (
	ErrDuplicateEmail    = dao.ErrDuplicateEmail
	ErrDuplicateUsername = dao.ErrDuplicateUsername
	ErrUserNotFound      = dao.ErrRecordNotFound
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=./mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	UpdateProfile(ctx context.Context, u domain.User) error
	UpdateAvatar(ctx context.Context, username string, avatar string) error
}

type CachedUserRepository struct {
	userDAO   dao.UserDAO
	userCache cache.UserCache
	l         logger.Logger
}

func NewCachedUserRepository(userDAO dao.UserDAO, userCache cache.UserCache, l logger.Logger) UserRepository {
	return &CachedUserRepository{
		userDAO:   userDAO,
		userCache: userCache,
		l:         l,
	}
}

func (c *CachedUserRepository) Create(ctx context.Context, u domain.User) error {
	return c.userDAO.Insert(ctx, c.toEntity(u))
}

func (c *CachedUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := c.userDAO.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	return c.toDomain(u), nil
}

func (c *CachedUserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	du, err := c.userCache.Get(ctx, username)
	switch {
	case err == nil:
		return du, nil
	case errors.Is(err, cache.ErrKeyNotExist):
		u, err := c.userDAO.FindByUsername(ctx, username)
		if err != nil {
			return domain.User{}, err
		}
		du = c.toDomain(u)
		if err = c.userCache.Set(ctx, du); err != nil {
			// 回写失败不影响这次查询
			c.l.Warn(ctx, "回写用户缓存失败", logger.String("username", username), logger.Error(err))
		}
		return du, nil
	default:
		// redis 有问题的时候不去打数据库，免得把数据库也拖垮
		return domain.User{}, err
	}
}

func (c *CachedUserRepository) UpdateProfile(ctx context.Context, u domain.User) error {
	if err := c.userDAO.UpdateProfile(ctx, c.toEntity(u)); err != nil {
		return err
	}
	return c.evict(ctx, u.Username)
}

func (c *CachedUserRepository) UpdateAvatar(ctx context.Context, username string, avatar string) error {
	if err := c.userDAO.UpdateAvatar(ctx, username, avatar); err != nil {
		return err
	}
	return c.evict(ctx, username)
}

// evict 更新数据库之后删缓存，下一次查询重新加载
func (c *CachedUserRepository) evict(ctx context.Context, username string) error {
	return c.userCache.Delete(ctx, username)
}

func (c *CachedUserRepository) toEntity(u domain.User) dao.User {
	return dao.User{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
		Nickname: u.Nickname,
		Phone:    u.Phone,
		Avatar:   u.Avatar,
	}
}

func (c *CachedUserRepository) toDomain(u dao.User) domain.User {
	return domain.User{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
		Nickname: u.Nickname,
		Phone:    u.Phone,
		Avatar:   u.Avatar,
		Ctime:    time.UnixMilli(u.Ctime),
	}
}
