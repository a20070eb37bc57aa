package ioc

import (
	"fmt"
	"time"

	"github.com/Deepfake2025/Deepfake-rear/internal/service"
	"github.com/Deepfake2025/Deepfake-rear/internal/service/strategy"
	"github.com/Deepfake2025/Deepfake-rear/internal/web"
	jwtware "github.com/Deepfake2025/Deepfake-rear/internal/web/middleware/jwt"

	"github.com/spf13/viper"
)

func InitUserConfig() service.UserConfig {
	type ProxyConfig struct {
		Schema string `mapstructure:"schema"`
		Host   string `mapstructure:"host"`
		Port   int    `mapstructure:"port"`
	}
	cfg := ProxyConfig{Schema: "http", Host: "localhost", Port: 8080}
	if err := viper.UnmarshalKey("proxy", &cfg); err != nil {
		panic(err)
	}
	expire := viper.GetInt64("storage.avatar_url_expire")
	if expire <= 0 {
		expire = 3600
	}
	return service.UserConfig{
		AvatarBaseURL:   fmt.Sprintf("%s://%s:%d", cfg.Schema, cfg.Host, cfg.Port),
		AvatarURLExpire: expire,
	}
}

func InitUploadConfig() service.UploadConfig {
	type Config struct {
		AvatarPrefix string `mapstructure:"avatar_prefix"`
		FilePrefix   string `mapstructure:"file_prefix"`
	}
	cfg := Config{AvatarPrefix: "avatars/", FilePrefix: "files/"}
	if err := viper.UnmarshalKey("upload", &cfg); err != nil {
		panic(err)
	}
	region := viper.GetString("aliyun.region")
	if region == "" {
		region = "cn-guangzhou"
	}
	duration := viper.GetDuration("aliyun.sts.duration")
	if duration <= 0 {
		duration = time.Hour
	}
	avatarBucket := viper.GetString("aliyun.oss.avatar.bucket")
	// 没单独配置文件 bucket 就和头像共用
	fileBucket := viper.GetString("aliyun.oss.file.bucket")
	if fileBucket == "" {
		fileBucket = avatarBucket
	}
	return service.UploadConfig{
		AvatarBucket: avatarBucket,
		FileBucket:   fileBucket,
		Region:       region,
		Endpoint:     viper.GetString("aliyun.oss.endpoint"),
		AvatarPrefix: cfg.AvatarPrefix,
		FilePrefix:   cfg.FilePrefix,
		Duration:     duration,
	}
}

func InitStrategySelector() *strategy.Selector {
	type Config struct {
		MaxFileSize  int64    `mapstructure:"max_file_size"`
		AllowedTypes []string `mapstructure:"allowed_types"`
	}
	avatar := Config{
		MaxFileSize:  2 << 20,
		AllowedTypes: []string{"jpg", "jpeg", "png", "gif"},
	}
	file := Config{
		MaxFileSize:  500 << 20,
		AllowedTypes: []string{"mp4", "avi", "mov", "mkv", "webm", "mp3", "wav", "aac", "ogg", "flac"},
	}
	if err := viper.UnmarshalKey("upload.avatar", &avatar); err != nil {
		panic(err)
	}
	if err := viper.UnmarshalKey("upload.file", &file); err != nil {
		panic(err)
	}
	return strategy.NewSelector(
		strategy.Config{MaxFileSize: avatar.MaxFileSize, AllowedTypes: avatar.AllowedTypes},
		strategy.Config{MaxFileSize: file.MaxFileSize, AllowedTypes: file.AllowedTypes},
	)
}

func InitJWTConfig() jwtware.Config {
	cfg := jwtware.Config{
		AccessExpiration:  30 * time.Minute,
		RefreshExpiration: 7 * 24 * time.Hour,
	}
	if d := viper.GetDuration("jwt.access_expiration"); d > 0 {
		cfg.AccessExpiration = d
	}
	if d := viper.GetDuration("jwt.refresh_expiration"); d > 0 {
		cfg.RefreshExpiration = d
	}
	// 密钥只从环境变量 JWT_ACCESS_KEY / JWT_REFRESH_KEY 读
	cfg.AccessKey = viper.GetString("jwt.access_key")
	cfg.RefreshKey = viper.GetString("jwt.refresh_key")
	if cfg.AccessKey == "" || cfg.RefreshKey == "" {
		panic("找不到 jwt 密钥，请设置 JWT_ACCESS_KEY 和 JWT_REFRESH_KEY")
	}
	return cfg
}

func InitAuthConfig() web.AuthConfig {
	return web.AuthConfig{CaptchaEnabled: viper.GetBool("captcha.enabled")}
}
