package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"

	"github.com/ceyewan/snowkit/clog"
)

// New 创建 Meter 实例
//
// cfg.Enabled 为 false 时返回 noop 实现。启用时构建 OpenTelemetry
// MeterProvider 并挂接 Prometheus Exporter；cfg.Port > 0 时额外启动
// 一个 HTTP 服务器暴露指标。
func New(cfg *Config, opts ...Option) (Meter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	if !cfg.Enabled {
		return &noopMeter{}, nil
	}

	options := &options{}
	for _, opt := range opts {
		opt(options)
	}
	logger := options.logger
	if logger == nil {
		logger = clog.Discard()
	}

	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
			semconv.ServiceVersionKey.String(cfg.Version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	prometheusExporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(prometheusExporter),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	if cfg.Port > 0 && cfg.Path != "" {
		go func() {
			addr := fmt.Sprintf(":%d", cfg.Port)
			mux := http.NewServeMux()
			mux.Handle(cfg.Path, promhttp.Handler())
			httpServer := &http.Server{Addr: addr, Handler: mux}
			logger.Info("starting prometheus metrics server",
				clog.String("addr", addr), clog.String("path", cfg.Path))
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("prometheus server error", clog.Error(err))
			}
		}()
	}

	return &meterImpl{
		meter:    mp.Meter("snowkit"),
		provider: mp,
	}, nil
}

// Must 类似 New，但出错时 panic。仅用于初始化阶段。
func Must(cfg *Config, opts ...Option) Meter {
	m, err := New(cfg, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create metrics: %v", err))
	}
	return m
}

// ========================================
// Meter 实现
// ========================================

type meterImpl struct {
	meter    metric.Meter
	provider *sdkmetric.MeterProvider
}

func (m *meterImpl) Counter(name string, desc string, opts ...MetricOption) (Counter, error) {
	c, err := m.meter.Int64Counter(name, metric.WithDescription(desc))
	if err != nil {
		return nil, err
	}
	return &counterImpl{c: c}, nil
}

func (m *meterImpl) Gauge(name string, desc string, opts ...MetricOption) (Gauge, error) {
	g, err := m.meter.Float64Gauge(name, metric.WithDescription(desc))
	if err != nil {
		return nil, err
	}
	return &gaugeImpl{g: g}, nil
}

func (m *meterImpl) Histogram(name string, desc string, opts ...MetricOption) (Histogram, error) {
	options := &MetricOptions{}
	for _, o := range opts {
		o(options)
	}

	otelOpts := []metric.Float64HistogramOption{
		metric.WithDescription(desc),
	}
	if options.Unit != "" {
		otelOpts = append(otelOpts, metric.WithUnit(options.Unit))
	}

	h, err := m.meter.Float64Histogram(name, otelOpts...)
	if err != nil {
		return nil, err
	}
	return &histogramImpl{h: h}, nil
}

func (m *meterImpl) Shutdown(ctx context.Context) error {
	return m.provider.Shutdown(ctx)
}

// ========================================
// 指标实现
// ========================================

type counterImpl struct {
	c metric.Int64Counter
}

func (c *counterImpl) Inc(ctx context.Context, labels ...Label) {
	c.c.Add(ctx, 1, metric.WithAttributes(toAttributes(labels)...))
}

func (c *counterImpl) Add(ctx context.Context, val float64, labels ...Label) {
	c.c.Add(ctx, int64(val), metric.WithAttributes(toAttributes(labels)...))
}

type gaugeImpl struct {
	g metric.Float64Gauge
}

func (g *gaugeImpl) Set(ctx context.Context, val float64, labels ...Label) {
	g.g.Record(ctx, val, metric.WithAttributes(toAttributes(labels)...))
}

type histogramImpl struct {
	h metric.Float64Histogram
}

func (h *histogramImpl) Record(ctx context.Context, val float64, labels ...Label) {
	h.h.Record(ctx, val, metric.WithAttributes(toAttributes(labels)...))
}

// ========================================
// noop 实现（Metrics 禁用时使用）
// ========================================

type noopMeter struct{}

func (n *noopMeter) Counter(name string, desc string, opts ...MetricOption) (Counter, error) {
	return &noopCounter{}, nil
}

func (n *noopMeter) Gauge(name string, desc string, opts ...MetricOption) (Gauge, error) {
	return &noopGauge{}, nil
}

func (n *noopMeter) Histogram(name string, desc string, opts ...MetricOption) (Histogram, error) {
	return &noopHistogram{}, nil
}

func (n *noopMeter) Shutdown(ctx context.Context) error {
	return nil
}

type noopCounter struct{}

func (n *noopCounter) Inc(ctx context.Context, labels ...Label)              {}
func (n *noopCounter) Add(ctx context.Context, val float64, labels ...Label) {}

type noopGauge struct{}

func (n *noopGauge) Set(ctx context.Context, val float64, labels ...Label) {}

type noopHistogram struct{}

func (n *noopHistogram) Record(ctx context.Context, val float64, labels ...Label) {}

// toAttributes 将标签转换为 OTel 属性（内部使用）
func toAttributes(labels []Label) []attribute.KeyValue {
	if len(labels) == 0 {
		return nil
	}
	attrs := make([]attribute.KeyValue, len(labels))
	for i, l := range labels {
		attrs[i] = attribute.String(l.Key, l.Value)
	}
	return attrs
}
