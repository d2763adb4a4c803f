package clog

import "io"

// Option 函数式选项，用于配置 Logger 实例
type Option func(*options)

// options 内部选项结构
type options struct {
	namespaceParts []string
	writer         io.Writer // 覆盖 Config.Output，主要供测试注入缓冲区
}

// WithNamespace 设置日志命名空间，支持多级命名空间
//
// 命名空间以 "." 连接，作为日志中的 namespace 字段。
//
// 示例：
//
//	// 设置为 "snowkit.generator"
//	clog.WithNamespace("snowkit", "generator")
func WithNamespace(parts ...string) Option {
	return func(o *options) {
		o.namespaceParts = append(o.namespaceParts, parts...)
	}
}

// WithWriter 直接指定输出目标，优先级高于 Config.Output
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// applyOptions 应用所有选项并返回配置（内部使用）
func applyOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
