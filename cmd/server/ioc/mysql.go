package ioc

import (
	"context"
	"fmt"
	"time"

	"github.com/Deepfake2025/Deepfake-rear/internal/repository/dao"
	"github.com/Deepfake2025/Deepfake-rear/pkg/logger"

	"github.com/spf13/viper"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

func InitMySQL(l logger.Logger) *gorm.DB {
	type Config struct {
		DSN string `mapstructure:"dsn"`
		// 慢查询阈值，0 表示每条 SQL 都打
		SlowThreshold time.Duration `mapstructure:"slow_threshold"`
	}
	cfg := Config{
		DSN: "root:root@tcp(localhost:3306)/deepfake?charset=utf8mb4&parseTime=True&loc=Local",
	}
	if err := viper.UnmarshalKey("mysql", &cfg); err != nil {
		panic(err)
	}
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: glogger.New(gormLoggerFunc(l.Debug), glogger.Config{
			SlowThreshold: cfg.SlowThreshold,
			LogLevel:      glogger.Info,
		}),
	})
	if err != nil {
		panic(err)
	}
	if err = dao.InitTables(db); err != nil {
		panic(err)
	}
	return db
}

type gormLoggerFunc func(ctx context.Context, msg string, fields ...logger.Field)

func (g gormLoggerFunc) Printf(s string, i ...interface{}) {
	g(context.Background(), "GORM SQL日志："+fmt.Sprintf(s, i...))
}
