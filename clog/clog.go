package clog

import (
	"fmt"
	"sync/atomic"
)

// New 创建一个新的 Logger 实例
//
// config - 日志配置，为 nil 时使用默认配置
// opts   - 函数式选项列表，用于命名空间等配置
func New(config *Config, opts ...Option) (Logger, error) {
	if config == nil {
		config = NewDefaultConfig()
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	options := applyOptions(opts...)

	return newLogger(config, options)
}

// 全局默认 Logger，延迟初始化
var defaultLogger atomic.Pointer[Logger]

// Default 返回全局默认 Logger
//
// 未调用 SetDefault 时返回使用默认配置的 Logger。
func Default() Logger {
	if l := defaultLogger.Load(); l != nil {
		return *l
	}
	l, err := New(nil)
	if err != nil {
		l = Discard()
	}
	defaultLogger.CompareAndSwap(nil, &l)
	return *defaultLogger.Load()
}

// SetDefault 替换全局默认 Logger
func SetDefault(l Logger) {
	if l == nil {
		return
	}
	defaultLogger.Store(&l)
}
