// Package snowid 从可插拔的位字段组件构建分布式、时间有序的整数标识符。
//
// 生成器持有一组有序组件，每个组件产出标识符的一个位字段：插入顺序
// 决定位安置（第一个组件占最高位），执行顺序决定每次调用时组件的
// 求值先后，两者相互独立。所有组件状态只在生成器的互斥段内被修改。
//
// 基本使用：
//
//	gen, _ := snowid.NewBuilder[int64]().
//	    AddTimestamp(41, epoch, 1).
//	    AddConstant(10, workerID).
//	    AddSequence(12, 0).
//	    Build()
//	id, _ := gen.Next()
package snowid

import (
	"github.com/ceyewan/snowkit/numeric"
	"github.com/ceyewan/snowkit/xerrors"
)

// Component 标识符的一个位字段的有状态产出者
//
// 具体组件只负责提供掩码前的原始值；掩码、溢出检查和 lastValue 的
// 记录由统一的取值路径完成，保证 lastValue 永远反映真正写入标识符
// 的值。组件实例至多绑定到一个生成器。
type Component[T numeric.Integer] interface {
	// Bits 返回该组件占用的位数
	Bits() uint8

	// ExecutionOrder 返回执行顺序键，默认 0；仅影响调用顺序，不影响位安置
	ExecutionOrder() int

	// AllowTruncation 报告掩码截断是否被允许
	AllowTruncation() bool

	// LastValue 返回上一次写入标识符的（已掩码）值
	LastValue() T

	// compute 计算掩码前的原始值（内部使用，在生成器互斥段内调用）
	compute(ctx *Context[T]) (uint64, error)

	// meta 暴露组件的公共状态（内部使用）
	meta() *core[T]
}

// settings 所有组件共有的可选设置
type settings struct {
	order int
	trunc bool
	clock Clock
}

// ComponentOption 组件初始化选项函数
type ComponentOption func(*settings)

// WithExecutionOrder 设置执行顺序键
//
// 任一组件带有非默认执行顺序时，生成器按该键稳定排序决定调用顺序；
// 否则直接使用插入顺序。
func WithExecutionOrder(order int) ComponentOption {
	return func(s *settings) {
		s.order = order
	}
}

// WithTruncation 允许掩码截断
//
// 组件产出的值超出位宽时静默取低位，而不是报溢出错误。
func WithTruncation() ComponentOption {
	return func(s *settings) {
		s.trunc = true
	}
}

// WithComponentClock 设置时钟源，仅对时间戳类组件生效
func WithComponentClock(clock Clock) ComponentOption {
	return func(s *settings) {
		s.clock = clock
	}
}

// core 组件的公共状态，嵌入到各具体组件中
type core[T numeric.Integer] struct {
	settings
	bits  uint8
	last  T
	owner *Generator[T]
}

// newCore 校验位宽并初始化公共状态（内部使用）
func newCore[T numeric.Integer](bits uint8, opts []ComponentOption) (core[T], error) {
	c := core[T]{bits: bits}
	c.clock = SystemClock
	for _, opt := range opts {
		opt(&c.settings)
	}
	if bits < 1 || uint(bits) > numeric.UsableBits[T]() {
		return core[T]{}, xerrors.Wrapf(ErrInvalidInput,
			"bit length %d out of range [1, %d]", bits, numeric.UsableBits[T]())
	}
	return c, nil
}

func (c *core[T]) Bits() uint8 {
	return c.bits
}

func (c *core[T]) ExecutionOrder() int {
	return c.order
}

func (c *core[T]) AllowTruncation() bool {
	return c.trunc
}

func (c *core[T]) LastValue() T {
	return c.last
}

func (c *core[T]) meta() *core[T] {
	return c
}

// claim 将组件绑定到生成器：重复绑定同一生成器为空操作，
// 绑定到其他生成器被拒绝（内部使用，生成器构造时调用一次）
func (c *core[T]) claim(g *Generator[T]) error {
	switch c.owner {
	case nil:
		c.owner = g
		return nil
	case g:
		return nil
	}
	return ErrComponentBound
}

// getValue 统一的取值路径：计算 → 掩码 → 溢出检查 → 记录 lastValue
//
// 原始值在 uint64 域中掩码，避免窄类型转换先行丢失高位导致漏报溢出。
func getValue[T numeric.Integer](c Component[T], ctx *Context[T]) (T, error) {
	raw, err := c.compute(ctx)
	if err != nil {
		return 0, err
	}
	m := c.meta()
	masked := raw & numeric.Mask[uint64](uint(m.bits))
	if masked != raw && !m.trunc {
		return 0, xerrors.Wrapf(ErrOverflow, "value %d exceeds %d bits", raw, m.bits)
	}
	m.last = T(masked)
	return m.last, nil
}
