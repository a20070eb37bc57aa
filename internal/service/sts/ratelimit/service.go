package ratelimit

import (
	"context"
	"errors"
	"time"

	"github.com/Deepfake2025/Deepfake-rear/internal/service/sts"
	"github.com/Deepfake2025/Deepfake-rear/pkg/limiter"
)

var ErrLimited = errors.New("STS 调用触发限流")

var _ sts.Service = (*Service)(nil)

// Service 全局限制 STS 调用频率，云厂商对 AssumeRole 有 QPS 配额
type Service struct {
	svc     sts.Service
	limiter limiter.Limiter
	key     string
}

func NewService(svc sts.Service, l limiter.Limiter) sts.Service {
	return &Service{
		svc:     svc,
		limiter: l,
		key:     "sts-limiter",
	}
}

func (s *Service) AssumeRole(ctx context.Context, policy string, sessionName string, duration time.Duration) (sts.Credential, error) {
	limited, err := s.limiter.Limit(ctx, s.key)
	if err != nil {
		return sts.Credential{}, err
	}
	if limited {
		return sts.Credential{}, ErrLimited
	}
	return s.svc.AssumeRole(ctx, policy, sessionName, duration)
}
