package bootstrap

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func InitViper() {
	file := pflag.String("config", "configs/dev.yaml", "配置文件路径")
	// 这一步之后，file 里面才有值
	pflag.Parse()

	// 密钥放在 .env 里，没有这个文件就只用系统环境变量
	_ = godotenv.Load()
	// aliyun.access_key_id 对应 ALIYUN_ACCESS_KEY_ID
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*file)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}
	fmt.Println("配置文件读取成功", viper.ConfigFileUsed())
}
