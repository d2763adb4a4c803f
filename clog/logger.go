// Package clog 提供基于 slog 的结构化日志组件。
//
// 特性：
//   - 抽象接口，不暴露底层实现（slog）
//   - 支持层级命名空间
//   - 零外部依赖（仅依赖 Go 标准库）
//   - 采用函数式选项模式
//
// 基本使用：
//
//	logger, _ := clog.New(&clog.Config{
//	    Level:  "info",
//	    Format: "console",
//	    Output: "stdout",
//	})
//	logger.Info("Hello, World!", clog.String("key", "value"))
package clog

// Logger 日志接口，提供结构化日志记录功能
//
// 支持四个日志级别：Debug、Info、Warn、Error。
//
// 创建子 Logger：
//
//	childLogger := logger.With(clog.String("component", "basen"))
//	namespacedLogger := logger.WithNamespace("snowid", "generator")
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With 创建一个带有预设字段的子 Logger，预设字段出现在其所有日志中。
	With(fields ...Field) Logger

	// WithNamespace 创建一个扩展命名空间的子 Logger。
	// 命名空间以 "." 连接后作为 namespace 字段输出。
	WithNamespace(parts ...string) Logger

	// SetLevel 动态调整日志级别，对共享同一 handler 的所有子 Logger 生效。
	SetLevel(level Level) error
}
