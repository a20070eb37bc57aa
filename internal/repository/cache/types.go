package cache

import "github.com/redis/go-redis/v9"

// ErrKeyNotExist 目前只有 redis 一种实现，直接用别名
var ErrKeyNotExist = redis.Nil
