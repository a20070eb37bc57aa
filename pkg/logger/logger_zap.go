package logger

import (
	"context"

	"go.uber.org/zap"
)

var _ Logger = (*ZapLogger)(nil)

// ZapLogger 不关心 ctx，没有开启链路追踪的时候用它
type ZapLogger struct {
	logger *zap.Logger
}

func NewZapLogger(logger *zap.Logger) Logger {
	return &ZapLogger{logger: logger}
}

func (l *ZapLogger) Info(ctx context.Context, msg string, args ...Field) {
	l.logger.Info(msg, toZapFields(args)...)
}

func (l *ZapLogger) Debug(ctx context.Context, msg string, args ...Field) {
	l.logger.Debug(msg, toZapFields(args)...)
}

func (l *ZapLogger) Warn(ctx context.Context, msg string, args ...Field) {
	l.logger.Warn(msg, toZapFields(args)...)
}

func (l *ZapLogger) Error(ctx context.Context, msg string, args ...Field) {
	l.logger.Error(msg, toZapFields(args)...)
}

func toZapFields(args []Field) []zap.Field {
	res := make([]zap.Field, 0, len(args))
	for _, arg := range args {
		if err, ok := arg.Val.(error); ok {
			res = append(res, zap.NamedError(arg.Key, err))
			continue
		}
		res = append(res, zap.Any(arg.Key, arg.Val))
	}
	return res
}
