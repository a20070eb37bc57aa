package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const uniqueIndexErrNo uint16 = 1062

type User struct {
	ID       int64  `gorm:"primaryKey,autoIncrement"`
	Username string `gorm:"type:varchar(128);uniqueIndex"`
	Email    string `gorm:"type:varchar(128);uniqueIndex"`
	Password string
	Nickname string `gorm:"type:varchar(128)"`
	Phone    string `gorm:"type:varchar(32)"`
	Avatar   string `gorm:"type:varchar(512)"`
	// UTC 0 的毫秒数
	Ctime int64
	Utime int64
}

var (
	ErrDuplicateEmail    = errors.New("邮箱冲突")
	ErrDuplicateUsername = errors.New("用户名冲突")
	ErrRecordNotFound    = gorm.ErrRecordNotFound
)

//go:generate mockgen -source=./user.go -package=daomocks -destination=./mocks/user.mock.go UserDAO
type UserDAO interface {
	Insert(ctx context.Context, u User) error
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	// UpdateProfile 只更新 Nickname 和 Phone 里的非零值
	UpdateProfile(ctx context.Context, u User) error
	UpdateAvatar(ctx context.Context, username string, avatar string) error
}

type GORMUserDAO struct {
	db *gorm.DB
}

func NewGORMUserDAO(db *gorm.DB) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (g *GORMUserDAO) Insert(ctx context.Context, u User) error {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := g.db.WithContext(ctx).Create(&u).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
		if strings.Contains(me.Message, "username") {
			return ErrDuplicateUsername
		}
		return ErrDuplicateEmail
	}
	return err
}

func (g *GORMUserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := g.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	return u, err
}

func (g *GORMUserDAO) FindByUsername(ctx context.Context, username string) (User, error) {
	var u User
	err := g.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	return u, err
}

func (g *GORMUserDAO) UpdateProfile(ctx context.Context, u User) error {
	res := g.db.WithContext(ctx).Model(&User{}).
		Where("username = ?", u.Username).
		Updates(User{
			Nickname: u.Nickname,
			Phone:    u.Phone,
			Utime:    time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (g *GORMUserDAO) UpdateAvatar(ctx context.Context, username string, avatar string) error {
	res := g.db.WithContext(ctx).Model(&User{}).
		Where("username = ?", username).
		Updates(map[string]any{
			"avatar": avatar,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
