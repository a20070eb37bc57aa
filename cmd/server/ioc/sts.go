package ioc

import (
	"context"
	"time"

	"github.com/Deepfake2025/Deepfake-rear/internal/service/sts"
	"github.com/Deepfake2025/Deepfake-rear/internal/service/sts/aliyun"
	"github.com/Deepfake2025/Deepfake-rear/internal/service/sts/memory"
	"github.com/Deepfake2025/Deepfake-rear/internal/service/sts/opentelemetry"
	stsprom "github.com/Deepfake2025/Deepfake-rear/internal/service/sts/prometheus"
	"github.com/Deepfake2025/Deepfake-rear/internal/service/sts/ratelimit"
	"github.com/Deepfake2025/Deepfake-rear/pkg/limiter"
	"github.com/Deepfake2025/Deepfake-rear/pkg/logger"

	aliyunsts "github.com/aliyun/alibaba-cloud-sdk-go/services/sts"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
)

// InitSTSService 限流 -> 监控 -> 追踪 -> 真正的实现，从外到内
func InitSTSService(cmd redis.Cmdable, l logger.Logger) sts.Service {
	type Config struct {
		Driver   string        `mapstructure:"driver"`
		RoleArn  string        `mapstructure:"role_arn"`
		Endpoint string        `mapstructure:"endpoint"`
		Interval time.Duration `mapstructure:"interval"`
		Rate     int           `mapstructure:"rate"`
	}
	cfg := Config{
		Driver:   "memory",
		Interval: time.Second,
		Rate:     100,
	}
	if err := viper.UnmarshalKey("aliyun.sts", &cfg); err != nil {
		panic(err)
	}

	var svc sts.Service
	switch cfg.Driver {
	case "aliyun":
		client, err := aliyunsts.NewClientWithAccessKey(
			viper.GetString("aliyun.region"),
			viper.GetString("aliyun.access_key_id"),
			viper.GetString("aliyun.access_key_secret"),
		)
		if err != nil {
			panic(err)
		}
		svc = aliyun.NewService(client, aliyun.Config{RoleArn: cfg.RoleArn, Endpoint: cfg.Endpoint})
	default:
		l.Warn(context.Background(), "使用本地假 STS 凭证，只能用于开发环境")
		svc = memory.NewService(l)
	}

	svc = opentelemetry.NewDecorator(svc, otel.Tracer("github.com/Deepfake2025/Deepfake-rear/internal/service/sts"))
	svc = stsprom.NewDecorator(svc, prometheus.DefaultRegisterer, prometheus.SummaryOpts{
		Namespace: "deepfake",
		Subsystem: "rear",
		Name:      "sts_assume_role",
		Help:      "STS AssumeRole 的调用耗时",
	})
	return ratelimit.NewService(svc, limiter.NewRedisSlideWindowLimiter(cmd, cfg.Interval, cfg.Rate))
}
