package basen

import (
	"math/bits"

	"github.com/ceyewan/snowkit/numeric"
	"github.com/ceyewan/snowkit/xerrors"
)

// Codec 将 T 类型的非负整数与字符串互相转换。
//
// 算法路径在构建时按可用位宽选定一次：可用位数小于 32 的类型走
// 定宽路径，在原生 32 位寄存器中完成运算；其余类型（含 32 位无符号）
// 走任意位宽路径，直接在 T 自身的算术域中计算。窄类型的解码结果
// 以该类型的实际最大值为界，即使字符串对更宽的类型合法也会被拒绝。
type Codec[T numeric.Integer] struct {
	alpha  *Alphabet
	maxLen int  // 该类型最大值的编码长度
	fixed  bool // 定宽路径
	max32  uint32
}

// newCodec 构建 T 类型的专用编解码器（内部使用，经 For 缓存）
func newCodec[T numeric.Integer](a *Alphabet) *Codec[T] {
	c := &Codec[T]{
		alpha: a,
		fixed: numeric.UsableBits[T]() < 32,
	}
	if c.fixed {
		c.max32 = uint32(numeric.Max[T]())
	}
	base := uint64(a.Base())
	for v := uint64(numeric.Max[T]()); v > 0; v /= base {
		c.maxLen++
	}
	return c
}

// MaxLen 返回该类型最大值的编码长度。
func (c *Codec[T]) MaxLen() int {
	return c.maxLen
}

// Encode 将非负整数编码为字符串。
//
// 零被特化为字母表首字符；负数返回 ErrNegative。
func (c *Codec[T]) Encode(v T) (string, error) {
	if v < 0 {
		return "", xerrors.Wrapf(ErrNegative, "value %v", v)
	}
	if v == 0 {
		return c.alpha.zero, nil
	}
	if c.fixed {
		return c.encode32(uint32(v)), nil
	}
	return c.encode64(uint64(v)), nil
}

// encode32 定宽路径：32 位寄存器内做除法，从缓冲区末尾向前填充
func (c *Codec[T]) encode32(v uint32) string {
	base := uint32(c.alpha.Base())
	buf := make([]byte, c.maxLen)
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = c.alpha.digits[v%base]
		v /= base
	}
	return string(buf[i:])
}

// encode64 任意位宽路径
func (c *Codec[T]) encode64(v uint64) string {
	base := uint64(c.alpha.Base())
	buf := make([]byte, c.maxLen)
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = c.alpha.digits[v%base]
		v /= base
	}
	return string(buf[i:])
}

// Decode 将字符串解码为 T 类型的整数。
//
// 空字符串返回 ErrEmptyInput，字母表外的字符返回 ErrInvalidChar，
// 累加值或乘数超出 T 的表示范围返回 ErrOverflow。
func (c *Codec[T]) Decode(s string) (T, error) {
	if s == "" {
		return 0, ErrEmptyInput
	}
	if c.fixed {
		return c.decode32(s)
	}
	return c.decodeWide(s)
}

// decode32 定宽路径：从最后一个字符向前累加，全部运算在 uint32 中完成
func (c *Codec[T]) decode32(s string) (T, error) {
	base := uint32(c.alpha.Base())
	var acc uint32
	mul := uint32(1)
	for i := len(s) - 1; i >= 0; i-- {
		d := c.alpha.index[s[i]]
		if d < 0 {
			return 0, xerrors.Wrapf(ErrInvalidChar, "%q at position %d", s[i], i)
		}
		hi, term := bits.Mul32(uint32(d), mul)
		if hi != 0 {
			return 0, xerrors.Wrapf(ErrOverflow, "input %q", s)
		}
		sum, carry := bits.Add32(acc, term, 0)
		if carry != 0 {
			return 0, xerrors.Wrapf(ErrOverflow, "input %q", s)
		}
		acc = sum
		if i > 0 {
			hi, mul = bits.Mul32(mul, base)
			if hi != 0 {
				return 0, xerrors.Wrapf(ErrOverflow, "input %q", s)
			}
		}
	}
	if acc > c.max32 {
		return 0, xerrors.Wrapf(ErrOverflow, "input %q exceeds type maximum", s)
	}
	return T(acc), nil
}

// decodeWide 任意位宽路径：直接在 T 的算术域中累加，溢出由检查算术捕获
func (c *Codec[T]) decodeWide(s string) (T, error) {
	base := T(c.alpha.Base())
	var acc T
	mul := T(1)
	for i := len(s) - 1; i >= 0; i-- {
		d := c.alpha.index[s[i]]
		if d < 0 {
			return 0, xerrors.Wrapf(ErrInvalidChar, "%q at position %d", s[i], i)
		}
		term, ok := numeric.MulChecked(T(d), mul)
		if !ok {
			return 0, xerrors.Wrapf(ErrOverflow, "input %q", s)
		}
		acc, ok = numeric.AddChecked(acc, term)
		if !ok {
			return 0, xerrors.Wrapf(ErrOverflow, "input %q", s)
		}
		if i > 0 {
			mul, ok = numeric.MulChecked(mul, base)
			if !ok {
				return 0, xerrors.Wrapf(ErrOverflow, "input %q", s)
			}
		}
	}
	return acc, nil
}
