// Package metrics 提供基于 OpenTelemetry 的指标组件，经 Prometheus 格式暴露。
//
// 抽象接口不暴露底层实现，禁用时退化为 noop，调用侧无需条件判断。
//
// 基本使用：
//
//	meter, _ := metrics.New(&metrics.Config{
//	    Enabled:     true,
//	    ServiceName: "id-service",
//	    Port:        9090,
//	    Path:        "/metrics",
//	})
//	counter, _ := meter.Counter("ids_generated_total", "total ids generated")
//	counter.Inc(ctx, metrics.L("shard", "7"))
package metrics

import "context"

// Meter 指标工厂接口
type Meter interface {
	// Counter 创建只增计数器
	Counter(name string, desc string, opts ...MetricOption) (Counter, error)

	// Gauge 创建可增可减的仪表值
	Gauge(name string, desc string, opts ...MetricOption) (Gauge, error)

	// Histogram 创建直方图
	Histogram(name string, desc string, opts ...MetricOption) (Histogram, error)

	// Shutdown 关闭 Meter 并刷新所有指标
	Shutdown(ctx context.Context) error
}

// Counter 只增计数器
type Counter interface {
	Inc(ctx context.Context, labels ...Label)
	Add(ctx context.Context, val float64, labels ...Label)
}

// Gauge 仪表值
type Gauge interface {
	Set(ctx context.Context, val float64, labels ...Label)
}

// Histogram 直方图
type Histogram interface {
	Record(ctx context.Context, val float64, labels ...Label)
}

// MetricOption 单个指标的选项函数
type MetricOption func(*MetricOptions)

// MetricOptions 单个指标的选项配置
type MetricOptions struct {
	Unit string
}

// WithUnit 设置指标单位（如 "s"、"By"）
func WithUnit(unit string) MetricOption {
	return func(o *MetricOptions) {
		o.Unit = unit
	}
}
