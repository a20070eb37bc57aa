//go:build wireinject

package main

import (
	"github.com/Deepfake2025/Deepfake-rear/cmd/server/ioc"
	"github.com/Deepfake2025/Deepfake-rear/internal/repository"
	"github.com/Deepfake2025/Deepfake-rear/internal/repository/cache"
	"github.com/Deepfake2025/Deepfake-rear/internal/repository/dao"
	"github.com/Deepfake2025/Deepfake-rear/internal/service"
	"github.com/Deepfake2025/Deepfake-rear/internal/web"
	"github.com/Deepfake2025/Deepfake-rear/internal/web/middleware/jwt"

	"github.com/google/wire"
)

var thirdParty = wire.NewSet(
	ioc.InitLogger,
	ioc.InitMySQL,
	ioc.InitRedis,
	ioc.InitStorage,
	ioc.InitSTSService,
	ioc.InitCaptchaService,
)

var userSvc = wire.NewSet(
	cache.NewRedisUserCache,
	dao.NewGORMUserDAO,
	repository.NewCachedUserRepository,
	ioc.InitUserConfig,
	service.NewUserService,
)

var uploadSvc = wire.NewSet(
	cache.NewRedisUploadCache,
	repository.NewCachedUploadRepository,
	dao.NewGORMFileDAO,
	repository.NewFileRepository,
	ioc.InitStrategySelector,
	ioc.InitUploadConfig,
	service.NewUploadService,
)

func InitApp() *App {
	wire.Build(
		thirdParty,

		userSvc,
		uploadSvc,

		ioc.InitJWTConfig,
		jwt.NewRedisJWTHandler,
		ioc.InitAuthConfig,
		web.NewAuthHandler,
		web.NewUserHandler,
		web.NewUploadHandler,

		ioc.InitWebEngine,
		ioc.InitGinMiddlewares,
		wire.Struct(new(App), "*"),
	)
	return new(App)
}
