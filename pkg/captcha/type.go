package captcha

import "context"

type Response struct {
	ID string
	// 图片的 base64 data uri
	B64S string
}

//go:generate mockgen -source=./type.go -package=captchamocks -destination=./mocks/captcha.mock.go Service
type Service interface {
	Generate(ctx context.Context) (Response, error)
	// Verify 校验之后验证码立即失效
	Verify(ctx context.Context, id string, value string) bool
}
