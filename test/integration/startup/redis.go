package startup

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
)

const redisAddr = "localhost:6379"

func InitRedis() redis.Cmdable {
	return redis.NewClient(&redis.Options{Addr: redisAddr})
}

// Ready 本地没有起 MySQL 或者 Redis 的时候返回错误，测试直接跳过
func Ready() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer client.Close()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis 不可用: %w", err)
	}

	db, err := sql.Open("mysql", rootDSN)
	if err != nil {
		return err
	}
	defer db.Close()
	if err = db.PingContext(ctx); err != nil {
		return fmt.Errorf("mysql 不可用: %w", err)
	}
	return nil
}
