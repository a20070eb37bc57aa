package jwt

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessTokenHeader  = "x-jwt-token"
	RefreshTokenHeader = "x-refresh-token"
)

var (
	// ErrSessionInvalid 用户已经退出登录，ssid 进了黑名单
	ErrSessionInvalid = errors.New("会话已失效")
	ErrTokenInvalid   = errors.New("token 不合法")
)

//go:generate mockgen -source=./types.go -package=jwtmocks -destination=./mocks/handler.mock.go Handler
type Handler interface {
	// SetLoginToken 登录成功之后生成新的 ssid，同时下发长短 token
	SetLoginToken(ctx *gin.Context, uid int64, username string) error
	SetJWTToken(ctx *gin.Context, uid int64, username string, ssid string) error
	CheckSession(ctx *gin.Context, ssid string) error
	// ClearToken 清空响应头里的 token，并把 ssid 拉黑
	ClearToken(ctx *gin.Context, ssid string) error
	ExtractTokenString(ctx *gin.Context) string
	ParseAccessToken(tokenStr string) (UserClaims, error)
	ParseRefreshToken(tokenStr string) (RefreshClaims, error)
}

type Config struct {
	AccessKey         string
	RefreshKey        string
	AccessExpiration  time.Duration
	RefreshExpiration time.Duration
}

type UserClaims struct {
	jwt.RegisteredClaims
	Uid       int64
	Username  string
	Ssid      string
	UserAgent string
}

type RefreshClaims struct {
	jwt.RegisteredClaims
	Uid      int64
	Username string
	Ssid     string
}
