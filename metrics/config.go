package metrics

// Config 指标系统配置
//
// 典型配置示例（YAML）：
//
//	metrics:
//	  enabled: true
//	  service_name: "id-service"
//	  version: "v1.0.0"
//	  port: 9090
//	  path: "/metrics"
type Config struct {
	// Enabled 为 false 时 New 返回 noop Meter，所有操作为空操作
	Enabled bool `mapstructure:"enabled" yaml:"enabled" json:"enabled"`

	// ServiceName 服务名称，写入 OpenTelemetry Resource 的 service.name
	ServiceName string `mapstructure:"service_name" yaml:"service_name" json:"service_name"`

	// Version 服务版本，写入 service.version
	Version string `mapstructure:"version" yaml:"version" json:"version"`

	// Port 大于 0 时启动 HTTP 服务器暴露 Prometheus 格式指标
	Port int `mapstructure:"port" yaml:"port" json:"port"`

	// Path 指标的 HTTP 路径，必须以 "/" 开头
	Path string `mapstructure:"path" yaml:"path" json:"path"`
}
