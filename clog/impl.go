package clog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// NamespaceKey 是日志中命名空间的字段名
const NamespaceKey = "namespace"

// loggerImpl 是 Logger 接口的具体实现
type loggerImpl struct {
	logger *slog.Logger
	level  *slog.LevelVar
	ns     []string
}

// newLogger 创建 Logger 实例（内部使用）
func newLogger(config *Config, options *options) (Logger, error) {
	w, err := resolveOutput(config.Output, options.writer)
	if err != nil {
		return nil, err
	}

	level, _ := ParseLevel(config.Level)
	levelVar := new(slog.LevelVar)
	levelVar.Set(level.slogLevel())

	hopts := &slog.HandlerOptions{
		Level:     levelVar,
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	if strings.ToLower(config.Format) == "json" {
		handler = slog.NewJSONHandler(w, hopts)
	} else {
		handler = slog.NewTextHandler(w, hopts)
	}

	return &loggerImpl{
		logger: slog.New(handler),
		level:  levelVar,
		ns:     options.namespaceParts,
	}, nil
}

// resolveOutput 将配置的输出目标解析为 io.Writer
func resolveOutput(output string, override io.Writer) (io.Writer, error) {
	if override != nil {
		return override, nil
	}
	switch output {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}
}

// log 统一的日志入口：追加命名空间字段后交给 slog（内部使用）
func (l *loggerImpl) log(level slog.Level, msg string, fields []Field) {
	if len(l.ns) > 0 {
		fields = append(fields, slog.String(NamespaceKey, strings.Join(l.ns, ".")))
	}
	l.logger.LogAttrs(context.Background(), level, msg, fields...)
}

func (l *loggerImpl) Debug(msg string, fields ...Field) {
	l.log(slog.LevelDebug, msg, fields)
}

func (l *loggerImpl) Info(msg string, fields ...Field) {
	l.log(slog.LevelInfo, msg, fields)
}

func (l *loggerImpl) Warn(msg string, fields ...Field) {
	l.log(slog.LevelWarn, msg, fields)
}

func (l *loggerImpl) Error(msg string, fields ...Field) {
	l.log(slog.LevelError, msg, fields)
}

func (l *loggerImpl) With(fields ...Field) Logger {
	attrs := make([]any, len(fields))
	for i, f := range fields {
		attrs[i] = f
	}
	return &loggerImpl{
		logger: l.logger.With(attrs...),
		level:  l.level,
		ns:     l.ns,
	}
}

func (l *loggerImpl) WithNamespace(parts ...string) Logger {
	ns := append(append([]string{}, l.ns...), parts...)
	return &loggerImpl{
		logger: l.logger,
		level:  l.level,
		ns:     ns,
	}
}

// SetLevel 动态调整日志级别，通过共享的 slog.LevelVar 生效。
func (l *loggerImpl) SetLevel(level Level) error {
	l.level.Set(level.slogLevel())
	return nil
}
