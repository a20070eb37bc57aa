package middleware

import (
	"net/http"

	jwtware "github.com/Deepfake2025/Deepfake-rear/internal/web/middleware/jwt"
	"github.com/Deepfake2025/Deepfake-rear/pkg/ginx"
	"github.com/Deepfake2025/Deepfake-rear/pkg/logger"

	"github.com/ecodeclub/ekit/set"
	"github.com/gin-gonic/gin"
)

type JWTAuth struct {
	publicPaths set.Set[string]
	hdl         jwtware.Handler
	l           logger.Logger
}

func NewJWTAuth(hdl jwtware.Handler, l logger.Logger) *JWTAuth {
	s := set.NewMapSet[string](8)
	s.Add("/auth/register")
	s.Add("/auth/login")
	s.Add("/auth/logout")
	s.Add("/auth/refresh_token")
	s.Add("/auth/captcha")
	// 对象存储直接回调，带不了用户的 token
	s.Add("/user/avatar-upload/callback")
	s.Add("/file/upload/callback")
	s.Add("/metrics")
	return &JWTAuth{
		publicPaths: s,
		hdl:         hdl,
		l:           l,
	}
}

func (j *JWTAuth) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// 不需要校验
		if j.publicPaths.Exist(ctx.Request.URL.Path) {
			return
		}
		// 如果是空字符串，Parse 会报错
		tokenStr := j.hdl.ExtractTokenString(ctx)
		uc, err := j.hdl.ParseAccessToken(tokenStr)
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		err = j.hdl.CheckSession(ctx, uc.Ssid)
		if err != nil {
			// 系统错误或者用户已经主动退出登录了
			j.l.Warn(ctx, "会话校验失败", logger.Error(err), logger.String("username", uc.Username))
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// 后面的 handler 直接从 ctx 里面拿，不用再 Parse 一次
		ctx.Set(ginx.ClaimsKey, uc)
	}
}
