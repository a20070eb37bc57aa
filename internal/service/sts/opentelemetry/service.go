package opentelemetry

import (
	"context"
	"time"

	"github.com/Deepfake2025/Deepfake-rear/internal/service/sts"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Service struct {
	svc    sts.Service
	tracer trace.Tracer
}

func NewDecorator(svc sts.Service, tracer trace.Tracer) sts.Service {
	return &Service{
		svc:    svc,
		tracer: tracer,
	}
}

func (s *Service) AssumeRole(ctx context.Context, policy string, sessionName string, duration time.Duration) (sts.Credential, error) {
	ctx, span := s.tracer.Start(ctx, "sts.AssumeRole", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("sts.session_name", sessionName),
		attribute.Int64("sts.duration_seconds", int64(duration.Seconds())),
	)
	c, err := s.svc.AssumeRole(ctx, policy, sessionName, duration)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return c, err
	}
	span.AddEvent("签发成功")
	return c, nil
}
