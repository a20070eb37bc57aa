package startup

import (
	"os"
	"time"

	"github.com/Deepfake2025/Deepfake-rear/internal/service"
	"github.com/Deepfake2025/Deepfake-rear/internal/service/strategy"
	"github.com/Deepfake2025/Deepfake-rear/internal/web"
	"github.com/Deepfake2025/Deepfake-rear/internal/web/middleware"
	jwtware "github.com/Deepfake2025/Deepfake-rear/internal/web/middleware/jwt"
	"github.com/Deepfake2025/Deepfake-rear/pkg/captcha"
	"github.com/Deepfake2025/Deepfake-rear/pkg/captcha/mojocn"
	"github.com/Deepfake2025/Deepfake-rear/pkg/ginx"
	"github.com/Deepfake2025/Deepfake-rear/pkg/logger"
	"github.com/Deepfake2025/Deepfake-rear/pkg/storage"
	"github.com/Deepfake2025/Deepfake-rear/pkg/storage/local"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	Bucket       = "deepfake-integration"
	FileBucket   = "deepfake-integration-files"
	AvatarPrefix = "avatars/"
	FilePrefix   = "files/"
)

func InitLogger() logger.Logger {
	return logger.NewNopLogger()
}

func InitStorage() storage.Provider {
	dir, err := os.MkdirTemp("", "deepfake-integration-*")
	if err != nil {
		panic(err)
	}
	p, err := local.NewProvider(local.Config{RootPath: dir, BaseURL: "http://localhost:8080/uploads"})
	if err != nil {
		panic(err)
	}
	return p
}

func InitJWTConfig() jwtware.Config {
	return jwtware.Config{
		AccessKey:         "integration-access-key",
		RefreshKey:        "integration-refresh-key",
		AccessExpiration:  30 * time.Minute,
		RefreshExpiration: 7 * 24 * time.Hour,
	}
}

func InitUserConfig() service.UserConfig {
	return service.UserConfig{AvatarBaseURL: "http://localhost:8080", AvatarURLExpire: 3600}
}

func InitUploadConfig() service.UploadConfig {
	return service.UploadConfig{
		AvatarBucket: Bucket,
		FileBucket:   FileBucket,
		Region:       "cn-guangzhou",
		Endpoint:     "oss-cn-guangzhou.aliyuncs.com",
		AvatarPrefix: AvatarPrefix,
		FilePrefix:   FilePrefix,
		Duration:     time.Hour,
	}
}

func InitStrategySelector() *strategy.Selector {
	return strategy.NewSelector(
		strategy.Config{MaxFileSize: 2 << 20, AllowedTypes: []string{"jpg", "jpeg", "png", "gif"}},
		strategy.Config{MaxFileSize: 500 << 20, AllowedTypes: []string{"mp4", "mp3", "wav"}},
	)
}

func InitCaptchaService(cmd redis.Cmdable) captcha.Service {
	return mojocn.NewService(mojocn.NewRedisStore(cmd, 5*time.Minute))
}

func InitAuthConfig() web.AuthConfig {
	return web.AuthConfig{}
}

func InitGinServer(l logger.Logger, jwtHdl jwtware.Handler,
	authHdl *web.AuthHandler,
	userHdl *web.UserHandler,
	uploadHdl *web.UploadHandler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	ginx.SetLogger(l)
	server := gin.New()
	server.Use(middleware.NewJWTAuth(jwtHdl, l).Middleware())
	authHdl.RegisterRoutes(server)
	userHdl.RegisterRoutes(server)
	uploadHdl.RegisterRoutes(server)
	return server
}
