package bootstrap

import "github.com/Deepfake2025/Deepfake-rear/pkg/validate"

func InitValidate() {
	if err := validate.InitTrans("zh"); err != nil {
		panic(err)
	}
}
