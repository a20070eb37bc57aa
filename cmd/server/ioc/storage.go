package ioc

import (
	"fmt"

	"github.com/Deepfake2025/Deepfake-rear/pkg/storage"
	"github.com/Deepfake2025/Deepfake-rear/pkg/storage/local"
	"github.com/Deepfake2025/Deepfake-rear/pkg/storage/oss"
	"github.com/Deepfake2025/Deepfake-rear/pkg/storage/s3"

	"github.com/spf13/viper"
)

// InitStorage 头像的签名链接和旧头像清理都走这里，storage.driver 决定用哪家
func InitStorage() storage.Provider {
	driver := viper.GetString("storage.driver")
	var (
		p   storage.Provider
		err error
	)
	switch driver {
	case "oss":
		p, err = oss.NewProvider(oss.Config{
			Endpoint:        viper.GetString("aliyun.oss.endpoint"),
			AccessKeyID:     viper.GetString("aliyun.access_key_id"),
			AccessKeySecret: viper.GetString("aliyun.access_key_secret"),
			BucketName:      viper.GetString("aliyun.oss.avatar.bucket"),
		})
	case "s3":
		type Config struct {
			Endpoint   string `mapstructure:"endpoint"`
			UseSSL     bool   `mapstructure:"use_ssl"`
			BucketName string `mapstructure:"bucket"`
			Region     string `mapstructure:"region"`
		}
		var cfg Config
		if err = viper.UnmarshalKey("storage.s3", &cfg); err != nil {
			panic(err)
		}
		p, err = s3.NewProvider(s3.Config{
			Endpoint:        cfg.Endpoint,
			AccessKeyID:     viper.GetString("storage.s3.access_key_id"),
			SecretAccessKey: viper.GetString("storage.s3.secret_access_key"),
			UseSSL:          cfg.UseSSL,
			BucketName:      cfg.BucketName,
			Region:          cfg.Region,
		})
	case "local", "":
		type Config struct {
			RootPath string `mapstructure:"root_path"`
			BaseURL  string `mapstructure:"base_url"`
		}
		cfg := Config{
			RootPath: "./uploads",
			BaseURL:  "http://localhost:8080/uploads",
		}
		if err = viper.UnmarshalKey("storage.local", &cfg); err != nil {
			panic(err)
		}
		p, err = local.NewProvider(local.Config{RootPath: cfg.RootPath, BaseURL: cfg.BaseURL})
	default:
		err = fmt.Errorf("未知的存储驱动: %s", driver)
	}
	if err != nil {
		panic(err)
	}
	return p
}
