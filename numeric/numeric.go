// Package numeric 提供跨位宽的整数类型能力层。
//
// 所有组件与编解码逻辑都写在 Integer 约束之上，位宽、符号性等能力
// 在实例化时确定一次，避免每次调用再做分支判断。
package numeric

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer 覆盖 Go 的全部原生整数类型（8 ~ 64 位，有符号与无符号）。
type Integer interface {
	constraints.Integer
}

// BitWidth 返回 T 的总位宽。
func BitWidth[T Integer]() uint {
	var z T
	return uint(unsafe.Sizeof(z)) * 8
}

// IsSigned 报告 T 是否为有符号类型。
func IsSigned[T Integer]() bool {
	var z T
	z--
	return z < 0
}

// UsableBits 返回 T 可用于字段分配的位数。
// 有符号类型保留符号位，因此可用位数为总位宽减一。
func UsableBits[T Integer]() uint {
	w := BitWidth[T]()
	if IsSigned[T]() {
		return w - 1
	}
	return w
}

// Max 返回 T 的最大值。
func Max[T Integer]() T {
	var z T
	if IsSigned[T]() {
		return T(uint64(1)<<(BitWidth[T]()-1) - 1)
	}
	return ^z
}

// Min 返回 T 的最小值。
func Min[T Integer]() T {
	if IsSigned[T]() {
		return -Max[T]() - 1
	}
	return 0
}

// Mask 返回低 bits 位全为 1 的掩码。
// bits 不小于可用位数时返回 Max，即全部可用位。
func Mask[T Integer](bits uint) T {
	if bits >= UsableBits[T]() {
		return Max[T]()
	}
	return T(uint64(1)<<bits - 1)
}

// AddChecked 计算 a+b 并报告是否未溢出。仅适用于非负操作数。
func AddChecked[T Integer](a, b T) (T, bool) {
	c := a + b
	if c < a {
		return 0, false
	}
	return c, true
}

// MulChecked 计算 a*b 并报告是否未溢出。仅适用于非负操作数。
func MulChecked[T Integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}
