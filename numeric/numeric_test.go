package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitWidth(t *testing.T) {
	assert.Equal(t, uint(8), BitWidth[int8]())
	assert.Equal(t, uint(8), BitWidth[uint8]())
	assert.Equal(t, uint(16), BitWidth[int16]())
	assert.Equal(t, uint(32), BitWidth[uint32]())
	assert.Equal(t, uint(64), BitWidth[int64]())
	assert.Equal(t, uint(64), BitWidth[uint64]())
}

func TestIsSigned(t *testing.T) {
	assert.True(t, IsSigned[int8]())
	assert.True(t, IsSigned[int64]())
	assert.True(t, IsSigned[int]())
	assert.False(t, IsSigned[uint8]())
	assert.False(t, IsSigned[uint32]())
	assert.False(t, IsSigned[uint64]())
}

func TestUsableBits(t *testing.T) {
	assert.Equal(t, uint(7), UsableBits[int8]())
	assert.Equal(t, uint(8), UsableBits[uint8]())
	assert.Equal(t, uint(31), UsableBits[int32]())
	assert.Equal(t, uint(32), UsableBits[uint32]())
	assert.Equal(t, uint(63), UsableBits[int64]())
	assert.Equal(t, uint(64), UsableBits[uint64]())
}

func TestMaxMin(t *testing.T) {
	assert.Equal(t, int8(math.MaxInt8), Max[int8]())
	assert.Equal(t, int8(math.MinInt8), Min[int8]())
	assert.Equal(t, uint8(math.MaxUint8), Max[uint8]())
	assert.Equal(t, uint8(0), Min[uint8]())
	assert.Equal(t, int64(math.MaxInt64), Max[int64]())
	assert.Equal(t, int64(math.MinInt64), Min[int64]())
	assert.Equal(t, uint64(math.MaxUint64), Max[uint64]())
}

func TestMask(t *testing.T) {
	assert.Equal(t, int64(0xFFF), Mask[int64](12))
	assert.Equal(t, int64(1), Mask[int64](1))
	assert.Equal(t, int64(math.MaxInt64), Mask[int64](63))
	assert.Equal(t, int64(math.MaxInt64), Mask[int64](64)) // 截到可用位数
	assert.Equal(t, uint64(math.MaxUint64), Mask[uint64](64))
	assert.Equal(t, int8(math.MaxInt8), Mask[int8](7))
	assert.Equal(t, uint8(0x0F), Mask[uint8](4))
}

func TestAddChecked(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		ok   bool
	}{
		{"small", 1, 2, true},
		{"at max", math.MaxInt64 - 1, 1, true},
		{"overflow", math.MaxInt64, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AddChecked(tt.a, tt.b)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.a+tt.b, got)
			}
		})
	}

	_, ok := AddChecked[uint8](200, 100)
	assert.False(t, ok)
	v, ok := AddChecked[uint8](200, 55)
	assert.True(t, ok)
	assert.Equal(t, uint8(255), v)
}

func TestMulChecked(t *testing.T) {
	v, ok := MulChecked[int64](1<<32, 1<<31)
	assert.False(t, ok)
	assert.Zero(t, v)

	v, ok = MulChecked[int64](1<<31, 1<<30)
	assert.True(t, ok)
	assert.Equal(t, int64(1)<<61, v)

	vu, ok := MulChecked[uint64](math.MaxUint64, 2)
	assert.False(t, ok)
	assert.Zero(t, vu)

	v, ok = MulChecked[int64](0, math.MaxInt64)
	assert.True(t, ok)
	assert.Zero(t, v)

	_, ok = MulChecked[uint8](16, 16)
	assert.False(t, ok)
	v8, ok := MulChecked[uint8](15, 17)
	assert.True(t, ok)
	assert.Equal(t, uint8(255), v8)
}
