package dao

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// File 普通文件的登记表，一个对象路径只登记一次
type File struct {
	ID         int64  `gorm:"primaryKey,autoIncrement"`
	Username   string `gorm:"type:varchar(128);index"`
	ObjectPath string `gorm:"type:varchar(512);uniqueIndex"`
	Bucket     string `gorm:"type:varchar(128)"`
	FileType   string `gorm:"type:varchar(64)"`
	Ctime      int64
	Utime      int64
}

var ErrDuplicateFile = errors.New("文件已登记")

//go:generate mockgen -source=./file.go -package=daomocks -destination=./mocks/file.mock.go FileDAO
type FileDAO interface {
	Insert(ctx context.Context, f File) (int64, error)
}

type GORMFileDAO struct {
	db *gorm.DB
}

func NewGORMFileDAO(db *gorm.DB) FileDAO {
	return &GORMFileDAO{db: db}
}

func (g *GORMFileDAO) Insert(ctx context.Context, f File) (int64, error) {
	now := time.Now().UnixMilli()
	f.Ctime = now
	f.Utime = now
	err := g.db.WithContext(ctx).Create(&f).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
		return 0, ErrDuplicateFile
	}
	return f.ID, err
}
