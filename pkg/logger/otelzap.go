package logger

import (
	"context"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

var _ Logger = (*OtelZapLogger)(nil)

// OtelZapLogger 是 Logger 接口的具体实现
type OtelZapLogger struct {
	l *otelzap.Logger
}

// NewOtelZapLogger 构造函数
func NewOtelZapLogger(l *otelzap.Logger) Logger {
	return &OtelZapLogger{
		l: l,
	}
}

func (o *OtelZapLogger) Debug(ctx context.Context, msg string, args ...Field) {
	// otelzap.Ctx(ctx) 会自动从 context 提取 TraceID
	o.l.Ctx(ctx).Debug(msg, toZapFields(args)...)
}

func (o *OtelZapLogger) Info(ctx context.Context, msg string, args ...Field) {
	o.l.Ctx(ctx).Info(msg, toZapFields(args)...)
}

func (o *OtelZapLogger) Warn(ctx context.Context, msg string, args ...Field) {
	o.l.Ctx(ctx).Warn(msg, toZapFields(args)...)
}

func (o *OtelZapLogger) Error(ctx context.Context, msg string, args ...Field) {
	o.l.Ctx(ctx).Error(msg, toZapFields(args)...)
}
