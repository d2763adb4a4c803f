package metrics

// Label 指标标签，为指标添加维度信息
//
// 标签值应当相对稳定，避免用户 ID、请求 ID 之类的高基数取值。
type Label struct {
	Key   string
	Value string
}

// L 便捷构造函数，创建一个 Label 实例
//
// 使用示例：
//
//	counter.Inc(ctx, metrics.L("code", "overflow"))
func L(key, value string) Label {
	return Label{Key: key, Value: value}
}
