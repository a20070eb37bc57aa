package logger

import "context"

// Logger 核心接口：强制要求 Context，方便从 ctx 里带出 TraceID
//
//go:generate mockgen -source=./type.go -package=mocks -destination=./mocks/logger.mock.go Logger
type Logger interface {
	Debug(ctx context.Context, msg string, args ...Field)
	Info(ctx context.Context, msg string, args ...Field)
	Warn(ctx context.Context, msg string, args ...Field)
	Error(ctx context.Context, msg string, args ...Field)
}

type Field struct {
	Key string
	Val any
}
