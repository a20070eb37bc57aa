package mojocn

import (
	"context"

	"github.com/Deepfake2025/Deepfake-rear/pkg/captcha"

	"github.com/mojocn/base64Captcha"
)

type Service struct {
	store  base64Captcha.Store
	driver base64Captcha.Driver
}

var _ captcha.Service = (*Service)(nil)

func NewService(store base64Captcha.Store) *Service {
	return &Service{
		store:  store,
		driver: base64Captcha.NewDriverDigit(80, 240, 5, 0.7, 80),
	}
}

func (s *Service) Generate(ctx context.Context) (captcha.Response, error) {
	c := base64Captcha.NewCaptcha(s.driver, s.store)
	id, b64s, _, err := c.Generate()
	if err != nil {
		return captcha.Response{}, err
	}
	return captcha.Response{ID: id, B64S: b64s}, nil
}

func (s *Service) Verify(ctx context.Context, id string, value string) bool {
	if id == "" || value == "" {
		return false
	}
	return s.store.Verify(id, value, true)
}
