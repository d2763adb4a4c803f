package snowid

import (
	"github.com/ceyewan/snowkit/numeric"
	"github.com/ceyewan/snowkit/xerrors"
)

// Sequence 序列组件
//
// 按索引引用同一生成器内的另一个组件：被引用组件的值与上次调用相同
// 时计数器加一，变化时归零，形成"同刻递增、换刻归零"的排序规则。
// 序列不允许截断，计数器超出位宽容量即报溢出（序列耗尽）。
//
// 引用目标不得是阻塞式时间戳组件：阻塞式时间戳已经保证逐次变化，
// 序列永远读到新值，位宽纯属浪费。
type Sequence[T numeric.Integer] struct {
	core[T]
	ref     int
	counter uint64
	prev    T
	seen    bool
}

// NewSequence 创建序列组件
//
// 参数:
//   - bits: 位宽 [1, 可用位数]
//   - ref: 被引用组件在生成器中的插入下标；目标的合法性（存在、非自身、
//     非阻塞式时间戳）在生成器构造时校验
func NewSequence[T numeric.Integer](bits uint8, ref int, opts ...ComponentOption) (*Sequence[T], error) {
	c, err := newCore[T](bits, opts)
	if err != nil {
		return nil, err
	}
	if ref < 0 {
		return nil, xerrors.Wrapf(ErrInvalidInput, "reference index %d must be non-negative", ref)
	}
	return &Sequence[T]{core: c, ref: ref}, nil
}

// Ref 返回被引用组件的插入下标。
func (s *Sequence[T]) Ref() int {
	return s.ref
}

func (s *Sequence[T]) compute(ctx *Context[T]) (uint64, error) {
	cur := ctx.Last(s.ref)
	if s.seen && cur == s.prev {
		s.counter++
	} else {
		s.counter = 0
		s.prev = cur
		s.seen = true
	}
	return s.counter, nil
}
