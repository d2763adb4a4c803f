package snowid

// Metrics 指标常量定义
const (
	// MetricGenerated 标识符生成总数 (Counter)
	MetricGenerated = "snowid_generated_total"

	// MetricErrors 生成失败总数 (Counter)，按 code 标签区分
	MetricErrors = "snowid_errors_total"

	// MetricLatency 单次生成耗时 (Histogram，单位秒)
	MetricLatency = "snowid_next_duration_seconds"
)
