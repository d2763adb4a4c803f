package snowid

import (
	"github.com/ceyewan/snowkit/numeric"
	"github.com/ceyewan/snowkit/xerrors"
)

// Custom 自定义组件，由调用方提供取值函数
//
// 取值函数返回掩码前的原始值，掩码与溢出检查仍由统一路径完成。
// 函数在生成器的互斥段内执行，可以安全持有自己的非同步状态，
// 但不应长时间阻塞。
type Custom[T numeric.Integer] struct {
	core[T]
	fn func(ctx *Context[T]) (uint64, error)
}

// NewCustom 创建自定义组件。
func NewCustom[T numeric.Integer](bits uint8, fn func(ctx *Context[T]) (uint64, error), opts ...ComponentOption) (*Custom[T], error) {
	c, err := newCore[T](bits, opts)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, xerrors.Wrapf(ErrInvalidInput, "value function is nil")
	}
	return &Custom[T]{core: c, fn: fn}, nil
}

func (c *Custom[T]) compute(ctx *Context[T]) (uint64, error) {
	return c.fn(ctx)
}
