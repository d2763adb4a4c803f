package clog

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level 日志级别类型
//
// 支持 4 个级别，按严重程度递增：
//
//	DebugLevel: 调试信息，通常只在开发环境使用
//	InfoLevel:  一般信息，记录正常的业务流程
//	WarnLevel:  警告信息，表示潜在问题
//	ErrorLevel: 错误信息，表示程序出错但可恢复
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String 返回级别的小写名称。
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel 解析级别名称，大小写不敏感。
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return DebugLevel, nil
	case "info", "":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return InfoLevel, fmt.Errorf("invalid log level: %s", s)
	}
}

// slogLevel 将 Level 映射为 slog.Level（内部使用）
func (l Level) slogLevel() slog.Level {
	switch l {
	case DebugLevel:
		return slog.LevelDebug
	case InfoLevel:
		return slog.LevelInfo
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
