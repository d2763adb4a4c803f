package config

import "github.com/ceyewan/snowkit/xerrors"

// ErrValidationFailed 配置校验失败
var ErrValidationFailed = xerrors.New("config: validation failed")

// IsValidationFailed 检查错误是否为校验失败
func IsValidationFailed(err error) bool {
	return xerrors.Is(err, ErrValidationFailed)
}
