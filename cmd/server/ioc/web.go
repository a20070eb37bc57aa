package ioc

import (
	"time"

	"github.com/Deepfake2025/Deepfake-rear/internal/web"
	"github.com/Deepfake2025/Deepfake-rear/internal/web/middleware"
	"github.com/Deepfake2025/Deepfake-rear/internal/web/middleware/jwt"
	"github.com/Deepfake2025/Deepfake-rear/pkg/ginx"
	ginxmw "github.com/Deepfake2025/Deepfake-rear/pkg/ginx/middleware"
	"github.com/Deepfake2025/Deepfake-rear/pkg/ginx/middleware/ratelimit"
	"github.com/Deepfake2025/Deepfake-rear/pkg/limiter"
	"github.com/Deepfake2025/Deepfake-rear/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

func InitWebEngine(middlewares []gin.HandlerFunc, l logger.Logger,
	authHdl *web.AuthHandler,
	userHdl *web.UserHandler,
	uploadHdl *web.UploadHandler) *gin.Engine {
	ginx.SetLogger(l)
	engine := gin.Default()
	// 本地存储的文件直接由服务端提供，要在中间件之前注册，不走登录校验
	if d := viper.GetString("storage.driver"); d == "local" || d == "" {
		root := viper.GetString("storage.local.root_path")
		if root == "" {
			root = "./uploads"
		}
		engine.Static("/uploads", root)
	}
	engine.Use(middlewares...)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	authHdl.RegisterRoutes(engine)
	userHdl.RegisterRoutes(engine)
	uploadHdl.RegisterRoutes(engine)
	return engine
}

func InitGinMiddlewares(cmd redis.Cmdable, jwtHdl jwt.Handler, l logger.Logger) []gin.HandlerFunc {
	corsMiddleware := cors.New(cors.Config{
		// 生产环境应该在配置里写死前端域名
		AllowOrigins:    viper.GetStringSlice("cors.allow_origins"),
		AllowAllOrigins: len(viper.GetStringSlice("cors.allow_origins")) == 0,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Refresh-Token"},
		// 允许前端访问后端设置的响应头
		ExposeHeaders:    []string{"X-Jwt-Token", "X-Refresh-Token"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})

	type RateLimitConfig struct {
		Interval time.Duration `mapstructure:"interval"`
		Rate     int           `mapstructure:"rate"`
	}
	rl := RateLimitConfig{Interval: time.Second, Rate: 100}
	if err := viper.UnmarshalKey("ratelimit", &rl); err != nil {
		panic(err)
	}

	pb := ginxmw.NewPrometheusBuilder("deepfake", "rear", "http", "HTTP 接口统计")
	pb.InstanceID = viper.GetString("instance_id")
	return []gin.HandlerFunc{
		corsMiddleware,
		pb.BuildResponseTime(),
		pb.BuildActiveRequest(),
		ratelimit.NewBuilder(limiter.NewRedisSlideWindowLimiter(cmd, rl.Interval, rl.Rate), l).Build(),
		middleware.NewJWTAuth(jwtHdl, l).Middleware(),
	}
}
