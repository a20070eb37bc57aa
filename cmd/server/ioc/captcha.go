package ioc

import (
	"time"

	"github.com/Deepfake2025/Deepfake-rear/pkg/captcha"
	"github.com/Deepfake2025/Deepfake-rear/pkg/captcha/mojocn"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

func InitCaptchaService(cmd redis.Cmdable) captcha.Service {
	expiration := viper.GetDuration("captcha.expiration")
	if expiration <= 0 {
		expiration = 5 * time.Minute
	}
	return mojocn.NewService(mojocn.NewRedisStore(cmd, expiration))
}
