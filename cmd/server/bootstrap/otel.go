package bootstrap

import (
	"context"
	"time"

	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

// InitOTEL 返回一个关闭函数，并且让调用者关闭的时候来决定这个 ctx
func InitOTEL() func(ctx context.Context) {
	type Config struct {
		ServiceName string `mapstructure:"service_name"`
		Version     string `mapstructure:"version"`
		ZipkinURL   string `mapstructure:"zipkin_url"`
	}
	cfg := Config{
		ServiceName: "deepfake-rear",
		Version:     "v0.0.1",
		ZipkinURL:   "http://localhost:9411/api/v2/spans",
	}
	if err := viper.UnmarshalKey("otel", &cfg); err != nil {
		panic(err)
	}
	res, err := newResource(cfg.ServiceName, cfg.Version)
	if err != nil {
		panic(err)
	}

	prop := newPropagator()
	// 在客户端和服务端之间传递 tracing 的相关信息
	otel.SetTextMapPropagator(prop)

	// 初始化 trace provider
	// 这个 provider 就是用来在打点的时候构建 trace 的
	tp, err := newTraceProvider(res, cfg.ZipkinURL)
	if err != nil {
		panic(err)
	}
	otel.SetTracerProvider(tp)

	return func(ctx context.Context) {
		_ = tp.Shutdown(ctx)
	}
}

// 产生遥测数据的实体
func newResource(serviceName, serviceVersion string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		))
}

// 创建一个“传播器”
func newPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}

// 创建一个“追踪提供者”
func newTraceProvider(res *resource.Resource, zipkinURL string) (*trace.TracerProvider, error) {
	// 将 OTel 内存中的 Span 数据转换成特定后端（Zipkin）的格式
	exporter, err := zipkin.New(zipkinURL)
	if err != nil {
		return nil, err
	}

	traceProvider := trace.NewTracerProvider(
		trace.WithBatcher(
			exporter,
			trace.WithBatchTimeout(time.Second),
		),
		trace.WithResource(res),
	)
	return traceProvider, nil
}
