package jwt

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var _ Handler = (*RedisJWTHandler)(nil)

type RedisJWTHandler struct {
	client        redis.Cmdable
	signingMethod jwt.SigningMethod
	accessKey     []byte
	refreshKey    []byte
	expiration    time.Duration
	rcExpiration  time.Duration
	now           func() time.Time
}

func NewRedisJWTHandler(client redis.Cmdable, cfg Config) Handler {
	return &RedisJWTHandler{
		client:        client,
		signingMethod: jwt.SigningMethodHS512,
		accessKey:     []byte(cfg.AccessKey),
		refreshKey:    []byte(cfg.RefreshKey),
		expiration:    cfg.AccessExpiration,
		rcExpiration:  cfg.RefreshExpiration,
		now:           time.Now,
	}
}

func ssidKey(ssid string) string {
	return fmt.Sprintf("users:ssid:%s", ssid)
}

func (r *RedisJWTHandler) CheckSession(ctx *gin.Context, ssid string) error {
	cnt, err := r.client.Exists(ctx, ssidKey(ssid)).Result()
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrSessionInvalid
	}
	return nil
}

// ExtractTokenString 根据约定，token 在 Authorization 头部  Bearer XXXX
func (r *RedisJWTHandler) ExtractTokenString(ctx *gin.Context) string {
	authCode := ctx.GetHeader("Authorization")
	if authCode == "" {
		return authCode
	}
	segs := strings.Split(authCode, " ")
	if len(segs) != 2 {
		return ""
	}
	return segs[1]
}

func (r *RedisJWTHandler) SetLoginToken(ctx *gin.Context, uid int64, username string) error {
	ssid := uuid.New().String()
	err := r.setRefreshToken(ctx, uid, username, ssid)
	if err != nil {
		return err
	}
	return r.SetJWTToken(ctx, uid, username, ssid)
}

func (r *RedisJWTHandler) ClearToken(ctx *gin.Context, ssid string) error {
	ctx.Header(AccessTokenHeader, "")
	ctx.Header(RefreshTokenHeader, "")
	// 长 token 过期之前 ssid 都不能再用
	return r.client.Set(ctx, ssidKey(ssid), "", r.rcExpiration).Err()
}

func (r *RedisJWTHandler) SetJWTToken(ctx *gin.Context, uid int64, username string, ssid string) error {
	uc := UserClaims{
		Uid:       uid,
		Username:  username,
		Ssid:      ssid,
		UserAgent: ctx.GetHeader("User-Agent"),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(r.now().Add(r.expiration)),
		},
	}
	tokenStr, err := jwt.NewWithClaims(r.signingMethod, uc).SignedString(r.accessKey)
	if err != nil {
		return err
	}
	ctx.Header(AccessTokenHeader, tokenStr)
	return nil
}

func (r *RedisJWTHandler) setRefreshToken(ctx *gin.Context, uid int64, username string, ssid string) error {
	rc := RefreshClaims{
		Uid:      uid,
		Username: username,
		Ssid:     ssid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(r.now().Add(r.rcExpiration)),
		},
	}
	tokenStr, err := jwt.NewWithClaims(r.signingMethod, rc).SignedString(r.refreshKey)
	if err != nil {
		return err
	}
	ctx.Header(RefreshTokenHeader, tokenStr)
	return nil
}

func (r *RedisJWTHandler) ParseAccessToken(tokenStr string) (UserClaims, error) {
	var uc UserClaims
	err := r.parse(tokenStr, &uc, r.accessKey)
	return uc, err
}

func (r *RedisJWTHandler) ParseRefreshToken(tokenStr string) (RefreshClaims, error) {
	var rc RefreshClaims
	err := r.parse(tokenStr, &rc, r.refreshKey)
	return rc, err
}

// parse 过期的 token 也算不合法
func (r *RedisJWTHandler) parse(tokenStr string, claims jwt.Claims, key []byte) error {
	if tokenStr == "" {
		return ErrTokenInvalid
	}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{r.signingMethod.Alg()}), jwt.WithTimeFunc(r.now))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return ErrTokenInvalid
	}
	return nil
}
