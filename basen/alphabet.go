// Package basen 提供任意进制的整数与紧凑字符串之间的编解码。
//
// 字母表定义数字到字符的映射：第一个字符代表 0。每个整数类型的编解码器
// 在首次使用时按类型惰性构建并缓存，之后无锁复用。
//
// 基本使用：
//
//	s, _ := basen.EncodeInt64(46)            // 默认 Base62
//	v, _ := basen.DecodeInt64(s)
//
//	s, _ = basen.Encode(basen.Base36Upper, int64(46)) // "1A"
//	n, _ := basen.Decode[uint32](basen.Base62, "4gfFC3")
package basen

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/ceyewan/snowkit/xerrors"
)

// Alphabet 有序且字符唯一的数字字母表。
//
// 字符顺序决定数字取值：下标 0 的字符代表数值 0。
// Alphabet 持有按整数类型缓存的编解码器注册表，可并发使用。
type Alphabet struct {
	digits string
	index  [256]int16 // 字符 → 数字值，-1 表示非法字符
	zero   string     // 零值的单字符编码，两条算法路径共用

	mu       sync.Mutex
	snapshot atomic.Pointer[map[reflect.Type]any]
}

// 内置字母表，均为 URL 安全字符集。
var (
	// Base36Upper 大写 base-36：0-9A-Z
	Base36Upper = xerrors.Must(NewAlphabet("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"))

	// Base36Lower 小写 base-36：0-9a-z
	Base36Lower = xerrors.Must(NewAlphabet("0123456789abcdefghijklmnopqrstuvwxyz"))

	// Base62 标准 base-62：0-9A-Za-z
	Base62 = xerrors.Must(NewAlphabet("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"))

	// Base64URL 64 个符号的 URL 安全变体，按码点排序：- 0-9 A-Z _ a-z
	Base64URL = xerrors.Must(NewAlphabet("-0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz"))
)

// NewAlphabet 从自定义字符串构建字母表
//
// digits 必须包含至少 2 个互不相同的单字节字符。
func NewAlphabet(digits string) (*Alphabet, error) {
	if len(digits) < 2 {
		return nil, xerrors.WithCode(ErrInvalidAlphabet, "too_few_digits")
	}
	if len(digits) > 256 {
		return nil, xerrors.WithCode(ErrInvalidAlphabet, "too_many_digits")
	}

	a := &Alphabet{digits: digits}
	for i := range a.index {
		a.index[i] = -1
	}
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c >= 0x80 {
			return nil, xerrors.WithCode(ErrInvalidAlphabet, "non_ascii_digit")
		}
		if a.index[c] >= 0 {
			return nil, xerrors.WithCode(ErrInvalidAlphabet, "duplicate_digit")
		}
		a.index[c] = int16(i)
	}
	a.zero = digits[:1]
	return a, nil
}

// Base 返回字母表的进制（字符数量）。
func (a *Alphabet) Base() int {
	return len(a.digits)
}

// Digits 返回字母表的字符序列。
func (a *Alphabet) Digits() string {
	return a.digits
}
