//go:build wireinject

package startup

import (
	"github.com/Deepfake2025/Deepfake-rear/internal/repository"
	"github.com/Deepfake2025/Deepfake-rear/internal/repository/cache"
	"github.com/Deepfake2025/Deepfake-rear/internal/repository/dao"
	"github.com/Deepfake2025/Deepfake-rear/internal/service"
	"github.com/Deepfake2025/Deepfake-rear/internal/service/sts/memory"
	"github.com/Deepfake2025/Deepfake-rear/internal/web"
	"github.com/Deepfake2025/Deepfake-rear/internal/web/middleware/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
)

var thirdParty = wire.NewSet(
	InitLogger,
	InitMySQL,
	InitRedis,
	InitStorage,
)

var userSvc = wire.NewSet(
	cache.NewRedisUserCache,
	dao.NewGORMUserDAO,
	repository.NewCachedUserRepository,
	InitUserConfig,
	service.NewUserService,
)

var uploadSvc = wire.NewSet(
	cache.NewRedisUploadCache,
	repository.NewCachedUploadRepository,
	dao.NewGORMFileDAO,
	repository.NewFileRepository,
	memory.NewService,
	InitStrategySelector,
	InitUploadConfig,
	service.NewUploadService,
)

func InitWebServer() *gin.Engine {
	wire.Build(
		thirdParty,
		userSvc,
		uploadSvc,
		InitCaptchaService,
		InitJWTConfig,
		jwt.NewRedisJWTHandler,
		InitAuthConfig,
		web.NewAuthHandler,
		web.NewUserHandler,
		web.NewUploadHandler,
		InitGinServer,
	)
	return new(gin.Engine)
}
