package clog

import (
	"fmt"
	"strings"
)

// Config 日志配置结构，定义日志的基本行为
//
// 支持的配置项：
//
//	Level:     日志级别 (debug|info|warn|error)
//	Format:    输出格式 (json|console)
//	Output:    输出目标 (stdout|stderr|文件路径)
//	AddSource: 是否显示调用位置信息
type Config struct {
	Level     string `json:"level" yaml:"level"`
	Format    string `json:"format" yaml:"format"`
	Output    string `json:"output" yaml:"output"`
	AddSource bool   `json:"addSource" yaml:"addSource"`
}

// NewDefaultConfig 返回开发环境友好的默认配置。
func NewDefaultConfig() *Config {
	return &Config{
		Level:  "info",
		Format: "console",
		Output: "stdout",
	}
}

// validate 校验配置并填充默认值（内部使用）
func (c *Config) validate() error {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stdout"
	}

	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}
	format := strings.ToLower(c.Format)
	if format != "json" && format != "console" {
		return fmt.Errorf("invalid format: %s, must be json or console", c.Format)
	}
	// Output 可以是 stdout、stderr 或文件路径，不做严格校验
	return nil
}
