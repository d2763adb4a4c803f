package snowid

import "github.com/ceyewan/snowkit/numeric"

// Context 一次生成调用期间的只读组件视图
//
// 按原始插入顺序暴露生成器全部组件的 lastValue，供组件之间相互读取
// （典型如序列组件读取时间戳组件）。Context 在生成器构造时创建一次，
// 自身没有任何可变状态。
type Context[T numeric.Integer] struct {
	components []Component[T]
}

// Len 返回组件数量。
func (c *Context[T]) Len() int {
	return len(c.components)
}

// Last 返回第 i 个组件（按插入顺序）最近一次写入标识符的值。
func (c *Context[T]) Last(i int) T {
	return c.components[i].LastValue()
}
