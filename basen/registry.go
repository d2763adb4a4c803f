package basen

import (
	"reflect"

	"github.com/ceyewan/snowkit/numeric"
)

// For 返回字母表下 T 类型的专用编解码器。
//
// 编解码器按类型惰性构建：先无锁读取不可变快照，未命中时加锁二次
// 检查再构建，并以原子替换的方式发布 快照+新条目。读远多于写，
// 且一个进程使用的整数类型集合很小，快照重建的开销可以接受。
func For[T numeric.Integer](a *Alphabet) *Codec[T] {
	key := reflect.TypeOf((*T)(nil)).Elem()

	if m := a.snapshot.Load(); m != nil {
		if c, ok := (*m)[key]; ok {
			return c.(*Codec[T])
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	old := a.snapshot.Load()
	if old != nil {
		if c, ok := (*old)[key]; ok {
			return c.(*Codec[T])
		}
	}

	c := newCodec[T](a)
	next := make(map[reflect.Type]any, 1)
	if old != nil {
		next = make(map[reflect.Type]any, len(*old)+1)
		for k, v := range *old {
			next[k] = v
		}
	}
	next[key] = c
	a.snapshot.Store(&next)
	return c
}

// Encode 用指定字母表编码一个非负整数。
func Encode[T numeric.Integer](a *Alphabet, v T) (string, error) {
	return For[T](a).Encode(v)
}

// Decode 用指定字母表解码为 T 类型整数。
func Decode[T numeric.Integer](a *Alphabet, s string) (T, error) {
	return For[T](a).Decode(s)
}

// EncodeInt64 用默认的 Base62 字母表编码 int64。
func EncodeInt64(v int64) (string, error) {
	return Encode(Base62, v)
}

// DecodeInt64 用默认的 Base62 字母表解码 int64。
func DecodeInt64(s string) (int64, error) {
	return Decode[int64](Base62, s)
}
