package config

import (
	"strings"

	"github.com/ceyewan/snowkit/clog"
)

// Options 加载器配置
type Options struct {
	Name      string      // 配置文件名称（不含扩展名），默认 "config"
	Paths     []string    // 配置文件搜索路径，默认 [".", "./config"]
	FileType  string      // 配置文件类型 (yaml, json, etc.)，默认 "yaml"
	EnvPrefix string      // 环境变量前缀，默认 "SNOWKIT"
	Logger    clog.Logger // 日志器，默认丢弃
}

// Option 配置选项函数
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		Name:      "config",
		Paths:     []string{".", "./config"},
		FileType:  "yaml",
		EnvPrefix: "SNOWKIT",
		Logger:    clog.Discard(),
	}
}

func (o *Options) normalize() {
	o.EnvPrefix = strings.ToUpper(o.EnvPrefix)
}

// WithConfigName 设置配置文件名称（不带扩展名）
func WithConfigName(name string) Option {
	return func(o *Options) {
		o.Name = name
	}
}

// WithConfigPath 追加配置文件搜索路径
func WithConfigPath(path string) Option {
	return func(o *Options) {
		o.Paths = append(o.Paths, path)
	}
}

// WithConfigPaths 设置配置文件搜索路径（覆盖默认值）
func WithConfigPaths(paths ...string) Option {
	return func(o *Options) {
		o.Paths = paths
	}
}

// WithConfigType 设置配置文件类型 (yaml, json, etc.)
func WithConfigType(typ string) Option {
	return func(o *Options) {
		o.FileType = typ
	}
}

// WithEnvPrefix 设置环境变量前缀
func WithEnvPrefix(prefix string) Option {
	return func(o *Options) {
		o.EnvPrefix = prefix
	}
}

// WithLogger 设置日志器
func WithLogger(logger clog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}
