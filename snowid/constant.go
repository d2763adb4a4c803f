package snowid

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/ceyewan/snowkit/numeric"
	"github.com/ceyewan/snowkit/xerrors"
)

// Constant 常量组件，每次调用返回构造时固定的值
//
// 典型用途是机器、分片或数据中心标识。实例唯一性由调用方负责，
// 生成器之间不做任何协调。
type Constant[T numeric.Integer] struct {
	core[T]
	value uint64
}

// NewConstant 用字面值创建常量组件，值必须非负。
func NewConstant[T numeric.Integer](bits uint8, value T, opts ...ComponentOption) (*Constant[T], error) {
	c, err := newCore[T](bits, opts)
	if err != nil {
		return nil, err
	}
	if value < 0 {
		return nil, xerrors.Wrapf(ErrInvalidInput, "constant value %v must be non-negative", value)
	}
	return &Constant[T]{core: c, value: uint64(value)}, nil
}

// NewConstantFromString 用字符串的加密哈希派生常量组件
//
// 取 SHA-256 摘要的低位字节并按大端序读取，保证同一输入在任何机器上
// 派生出同一常量（这里关心的是跨机一致性，不是密码学强度）；随后清除
// 符号位保证非负。哈希输出宽于目标字段，因此本构造路径允许截断。
func NewConstantFromString[T numeric.Integer](bits uint8, input string, opts ...ComponentOption) (*Constant[T], error) {
	c, err := newCore[T](bits, append(opts, WithTruncation()))
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256([]byte(input))
	value := binary.BigEndian.Uint64(sum[len(sum)-8:])
	value &^= 1 << 63 // 清除符号位，保证非负
	return &Constant[T]{core: c, value: value}, nil
}

func (c *Constant[T]) compute(_ *Context[T]) (uint64, error) {
	return c.value, nil
}
