// Package config 提供统一的配置加载能力，基于 Viper 实现。
// 支持多源加载、热更新和配置校验。
//
// 特性：
//   - 多源加载：YAML/JSON 文件、环境变量、.env 文件
//   - 优先级：环境变量 > .env > 环境特定配置 > 基础配置
//   - 热更新：监听配置文件变化并通知订阅者
//
// 基本使用：
//
//	loader := config.MustLoad(
//	    config.WithConfigName("config"),
//	    config.WithConfigPaths("./config"),
//	    config.WithEnvPrefix("SNOWKIT"),
//	)
//
//	var gen snowid.Config
//	if err := loader.UnmarshalKey("generator", &gen); err != nil {
//	    panic(err)
//	}
//
//	// 监听配置变化
//	ch, _ := loader.Watch(context.Background(), "generator.fields")
//	for event := range ch {
//	    fmt.Printf("配置变化: %s = %v\n", event.Key, event.Value)
//	}
package config

import (
	"context"
	"time"
)

// Loader 配置加载器接口
type Loader interface {
	// Load 加载配置并初始化内部状态
	Load(ctx context.Context) error

	// Get 获取原始配置值
	Get(key string) any

	// Unmarshal 将整个配置反序列化到结构体
	Unmarshal(v any) error

	// UnmarshalKey 将指定 Key 的配置反序列化到结构体
	UnmarshalKey(key string, v any) error

	// Watch 监听配置变化，通过 context 取消监听
	Watch(ctx context.Context, key string) (<-chan Event, error)

	// Validate 验证当前配置的有效性
	Validate() error
}

// Event 配置变更事件
type Event struct {
	Key       string // 配置 key
	Value     any    // 新值
	OldValue  any    // 旧值
	Source    string // "file" | "env"
	Timestamp time.Time
}
