package snowid

import (
	"time"

	"github.com/ceyewan/snowkit/numeric"
	"github.com/ceyewan/snowkit/xerrors"
)

// Builder 生成器的链式构造器
//
// 每个 Add 方法追加一个位字段并即时校验：位宽预算随追加递增检查，
// 重复组件和非法序列引用在追加时就报错。首个错误被保留，之后的
// 调用全部短路，最终由 Build 返回。零值不可用，必须经 NewBuilder
// 创建。
type Builder[T numeric.Integer] struct {
	comps []Component[T]
	bits  uint
	err   error
}

// NewBuilder 创建空的构造器
func NewBuilder[T numeric.Integer]() *Builder[T] {
	return &Builder[T]{}
}

// Add 追加一个已构造的组件
func (b *Builder[T]) Add(c Component[T]) *Builder[T] {
	if b.err != nil {
		return b
	}
	if c == nil {
		b.err = xerrors.WithCode(ErrInvalidInput, "component_nil")
		return b
	}
	for _, existing := range b.comps {
		if existing == c {
			b.err = xerrors.WithCode(ErrInvalidInput, "component_duplicate")
			return b
		}
	}
	if seq, ok := c.(*Sequence[T]); ok {
		if err := b.checkRef(seq.Ref()); err != nil {
			b.err = err
			return b
		}
	}
	b.bits += uint(c.Bits())
	if b.bits > numeric.UsableBits[T]() {
		b.err = xerrors.Wrapf(ErrInvalidInput,
			"total bits %d exceed usable bits %d", b.bits, numeric.UsableBits[T]())
		return b
	}
	b.comps = append(b.comps, c)
	return b
}

// AddTimestamp 追加非阻塞时间戳组件
func (b *Builder[T]) AddTimestamp(bits uint8, epoch time.Time, divisor int64, opts ...ComponentOption) *Builder[T] {
	if b.err != nil {
		return b
	}
	c, err := NewTimestamp[T](bits, epoch, divisor, opts...)
	if err != nil {
		b.err = err
		return b
	}
	return b.Add(c)
}

// AddBlockingTimestamp 追加阻塞时间戳组件
func (b *Builder[T]) AddBlockingTimestamp(bits uint8, epoch time.Time, divisor int64, opts ...ComponentOption) *Builder[T] {
	if b.err != nil {
		return b
	}
	c, err := NewBlockingTimestamp[T](bits, epoch, divisor, opts...)
	if err != nil {
		b.err = err
		return b
	}
	return b.Add(c)
}

// AddConstant 追加固定值组件
func (b *Builder[T]) AddConstant(bits uint8, value T, opts ...ComponentOption) *Builder[T] {
	if b.err != nil {
		return b
	}
	c, err := NewConstant[T](bits, value, opts...)
	if err != nil {
		b.err = err
		return b
	}
	return b.Add(c)
}

// AddHashConstant 追加由字符串散列派生的固定值组件
func (b *Builder[T]) AddHashConstant(bits uint8, input string, opts ...ComponentOption) *Builder[T] {
	if b.err != nil {
		return b
	}
	c, err := NewConstantFromString[T](bits, input, opts...)
	if err != nil {
		b.err = err
		return b
	}
	return b.Add(c)
}

// AddSequence 追加序列组件，ref 为被观察组件的插入下标
func (b *Builder[T]) AddSequence(bits uint8, ref int, opts ...ComponentOption) *Builder[T] {
	if b.err != nil {
		return b
	}
	c, err := NewSequence[T](bits, ref, opts...)
	if err != nil {
		b.err = err
		return b
	}
	return b.Add(c)
}

// AddCustom 追加自定义组件
func (b *Builder[T]) AddCustom(bits uint8, fn func(ctx *Context[T]) (uint64, error), opts ...ComponentOption) *Builder[T] {
	if b.err != nil {
		return b
	}
	c, err := NewCustom[T](bits, fn, opts...)
	if err != nil {
		b.err = err
		return b
	}
	return b.Add(c)
}

// checkRef 校验序列引用指向一个已追加的非阻塞组件
func (b *Builder[T]) checkRef(ref int) error {
	if ref < 0 || ref >= len(b.comps) {
		return xerrors.Wrapf(ErrInvalidInput,
			"sequence references component %d, only %d added so far", ref, len(b.comps))
	}
	if _, ok := b.comps[ref].(*BlockingTimestamp[T]); ok {
		return xerrors.Wrapf(ErrInvalidInput,
			"sequence references blocking timestamp at %d", ref)
	}
	return nil
}

// Err 返回构造过程中遇到的首个错误
func (b *Builder[T]) Err() error {
	return b.err
}

// Build 构造生成器
func (b *Builder[T]) Build(opts ...Option) (*Generator[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.comps) == 0 {
		return nil, xerrors.WithCode(ErrInvalidInput, "components_empty")
	}
	return New(b.comps, opts...)
}
