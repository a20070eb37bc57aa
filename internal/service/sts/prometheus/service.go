package prometheus

import (
	"context"
	"time"

	"github.com/Deepfake2025/Deepfake-rear/internal/service/sts"

	"github.com/prometheus/client_golang/prometheus"
)

// Service 统计 STS 调用耗时，按成功失败分开
type Service struct {
	svc    sts.Service
	vector *prometheus.SummaryVec
}

func NewDecorator(svc sts.Service, reg prometheus.Registerer, opt prometheus.SummaryOpts) sts.Service {
	vector := prometheus.NewSummaryVec(opt, []string{"status"})
	reg.MustRegister(vector)
	return &Service{
		svc:    svc,
		vector: vector,
	}
}

func (s *Service) AssumeRole(ctx context.Context, policy string, sessionName string, duration time.Duration) (sts.Credential, error) {
	start := time.Now()
	c, err := s.svc.AssumeRole(ctx, policy, sessionName, duration)
	status := "ok"
	if err != nil {
		status = "error"
	}
	s.vector.WithLabelValues(status).Observe(float64(time.Since(start).Milliseconds()))
	return c, err
}
