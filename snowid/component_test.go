package snowid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstant(t *testing.T) {
	t.Run("固定值", func(t *testing.T) {
		c, err := NewConstant[int64](10, 378)
		require.NoError(t, err)

		v, err := getValue[int64](c, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(378), v)
		assert.Equal(t, int64(378), c.LastValue())

		// 再取一次仍是同值
		v, err = getValue[int64](c, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(378), v)
	})

	t.Run("负值拒绝", func(t *testing.T) {
		_, err := NewConstant[int64](10, -1)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("超宽报溢出", func(t *testing.T) {
		c, err := NewConstant[int64](4, 16)
		require.NoError(t, err)

		_, err = getValue[int64](c, nil)
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("允许截断时取低位", func(t *testing.T) {
		c, err := NewConstant[int64](4, 16, WithTruncation())
		require.NoError(t, err)

		v, err := getValue[int64](c, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), v)
	})

	t.Run("位宽越界", func(t *testing.T) {
		_, err := NewConstant[int64](0, 1)
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = NewConstant[int32](32, 1)
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = NewConstant[uint32](32, 1)
		assert.NoError(t, err)
	})
}

func TestNewConstantFromString(t *testing.T) {
	t.Run("派生值确定且非负", func(t *testing.T) {
		// SHA-256("shard-7") 低 8 字节大端序读取并清除符号位
		c, err := NewConstantFromString[int64](10, "shard-7")
		require.NoError(t, err)
		assert.Equal(t, uint64(8002984375793941153), c.value)

		v, err := getValue[int64](c, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(673), v)
	})

	t.Run("同输入跨实例一致", func(t *testing.T) {
		a, err := NewConstantFromString[int64](16, "node-a.example.com")
		require.NoError(t, err)
		b, err := NewConstantFromString[int64](16, "node-a.example.com")
		require.NoError(t, err)

		va, err := getValue[int64](a, nil)
		require.NoError(t, err)
		vb, err := getValue[int64](b, nil)
		require.NoError(t, err)
		assert.Equal(t, va, vb)
		assert.Equal(t, int64(36546), va)
	})

	t.Run("截断隐含开启", func(t *testing.T) {
		c, err := NewConstantFromString[int64](10, "anything")
		require.NoError(t, err)
		assert.True(t, c.AllowTruncation())
	})
}

func TestNewCustom(t *testing.T) {
	t.Run("取值函数为空", func(t *testing.T) {
		_, err := NewCustom[int64](8, nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("原始值仍走统一掩码路径", func(t *testing.T) {
		c, err := NewCustom[int64](4, func(*Context[int64]) (uint64, error) {
			return 17, nil
		})
		require.NoError(t, err)

		_, err = getValue[int64](c, nil)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}

func TestComponentClaim(t *testing.T) {
	c, err := NewConstant[int64](10, 1)
	require.NoError(t, err)

	g1 := &Generator[int64]{}
	g2 := &Generator[int64]{}

	require.NoError(t, c.claim(g1))
	// 重复绑定同一生成器为空操作
	require.NoError(t, c.claim(g1))
	assert.ErrorIs(t, c.claim(g2), ErrComponentBound)
}

func TestExecutionOrderOption(t *testing.T) {
	c, err := NewConstant[int64](10, 1, WithExecutionOrder(5))
	require.NoError(t, err)
	assert.Equal(t, 5, c.ExecutionOrder())

	d, err := NewConstant[int64](10, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, d.ExecutionOrder())
}
