package ratelimit

import (
	"fmt"
	"net/http"

	"github.com/Deepfake2025/Deepfake-rear/pkg/limiter"
	"github.com/Deepfake2025/Deepfake-rear/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Builder 按客户端 IP 限流
type Builder struct {
	prefix  string
	limiter limiter.Limiter
	l       logger.Logger
}

func NewBuilder(l limiter.Limiter, log logger.Logger) *Builder {
	return &Builder{
		prefix:  "ip-limiter",
		limiter: l,
		l:       log,
	}
}

func (b *Builder) Prefix(prefix string) *Builder {
	b.prefix = prefix
	return b
}

func (b *Builder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := fmt.Sprintf("%s:%s", b.prefix, ctx.ClientIP())
		limited, err := b.limiter.Limit(ctx, key)
		if err != nil {
			// redis 挂了就保守一点，直接拒绝
			b.l.Error(ctx, "ip限流失败", logger.Error(err))
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if limited {
			b.l.Warn(ctx, "ip限流", logger.String("ip", ctx.ClientIP()))
			ctx.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		ctx.Next()
	}
}
