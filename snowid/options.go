package snowid

import (
	"github.com/ceyewan/snowkit/clog"
	"github.com/ceyewan/snowkit/metrics"
)

// Option 生成器初始化选项函数
type Option func(*Options)

// Options 生成器初始化选项配置
type Options struct {
	Logger clog.Logger
	Meter  metrics.Meter
}

// WithLogger 设置 Logger
func WithLogger(logger clog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithMeter 设置 Meter
func WithMeter(meter metrics.Meter) Option {
	return func(o *Options) {
		o.Meter = meter
	}
}
