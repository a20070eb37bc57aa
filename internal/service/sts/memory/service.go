package memory

import (
	"context"
	"time"

	"github.com/Deepfake2025/Deepfake-rear/internal/service/sts"
	"github.com/Deepfake2025/Deepfake-rear/pkg/logger"
)

// Service 本地开发用，不连云厂商，按 session name 生成假凭证
type Service struct {
	l logger.Logger
}

func NewService(l logger.Logger) sts.Service {
	return &Service{l: l}
}

func (s *Service) AssumeRole(ctx context.Context, policy string, sessionName string, duration time.Duration) (sts.Credential, error) {
	s.l.Info(ctx, "签发本地假凭证",
		logger.String("session", sessionName),
		logger.String("policy", policy))
	return sts.Credential{
		AccessKeyID:     "STS.mem." + sessionName,
		AccessKeySecret: "mem-secret",
		SecurityToken:   "mem-token",
		Expiration:      time.Now().Add(duration),
	}, nil
}
