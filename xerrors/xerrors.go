// Package xerrors 提供标准化的错误处理工具。
package xerrors

import (
	"errors"
	"fmt"
)

// Wrap 用上下文信息包装错误，保留原始错误链。
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf 用格式化的上下文信息包装错误。
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// WithCode 给错误附加机器可读错误码。
func WithCode(err error, code string) error {
	if err == nil {
		return nil
	}
	return &CodedError{Code: code, Cause: err}
}

// CodedError 携带错误码的错误。
type CodedError struct {
	Code  string
	Cause error
}

func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %v", e.Code, e.Cause)
	}
	return fmt.Sprintf("[%s]", e.Code)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// GetCode 从错误链中提取最近的错误码，没有则返回空串。
func GetCode(err error) string {
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ""
}

// Must 在 err 非 nil 时 panic。仅用于包级初始化。
func Must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("must: %v", err))
	}
	return v
}

// Collector 收集一组操作中的错误，只保留第一个。
type Collector struct {
	err error
}

func (c *Collector) Collect(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

func (c *Collector) Err() error {
	return c.err
}

// 标准库函数再导出
var (
	New    = errors.New
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)
