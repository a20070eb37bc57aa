package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusBuilder 统计 HTTP 接口的响应时间和活跃请求数
type PrometheusBuilder struct {
	Namespace string
	Subsystem string
	Name      string
	Help      string
	// 实例 ID，启动的时候从配置里读
	InstanceID string
	// 为空就用 prometheus.DefaultRegisterer
	Registerer prometheus.Registerer
}

func NewPrometheusBuilder(namespace, subsystem, name, help string) *PrometheusBuilder {
	return &PrometheusBuilder{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}
}

func (p *PrometheusBuilder) registerer() prometheus.Registerer {
	if p.Registerer == nil {
		return prometheus.DefaultRegisterer
	}
	return p.Registerer
}

func (p *PrometheusBuilder) BuildResponseTime() gin.HandlerFunc {
	// pattern 是命中的路由，不用原始 path，避免标签爆炸
	labels := []string{"method", "pattern", "status"}
	vector := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: p.Namespace,
		Subsystem: p.Subsystem,
		Name:      p.Name + "_resp_time",
		Help:      p.Help,
		ConstLabels: map[string]string{
			"instance_id": p.InstanceID,
		},
		Objectives: map[float64]float64{
			0.5:   0.01,
			0.9:   0.01,
			0.99:  0.001,
			0.999: 0.0001,
		},
	}, labels)
	p.registerer().MustRegister(vector)
	return func(ctx *gin.Context) {
		start := time.Now()
		defer func() {
			vector.WithLabelValues(ctx.Request.Method, ctx.FullPath(),
				strconv.Itoa(ctx.Writer.Status())).
				Observe(float64(time.Since(start).Milliseconds()))
		}()
		ctx.Next()
	}
}

func (p *PrometheusBuilder) BuildActiveRequest() gin.HandlerFunc {
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: p.Namespace,
		Subsystem: p.Subsystem,
		Name:      p.Name + "_active_req",
		Help:      p.Help,
		ConstLabels: map[string]string{
			"instance_id": p.InstanceID,
		},
	})
	p.registerer().MustRegister(gauge)
	return func(ctx *gin.Context) {
		gauge.Inc()
		defer gauge.Dec()
		ctx.Next()
	}
}
