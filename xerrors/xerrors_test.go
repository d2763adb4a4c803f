package xerrors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	base := New("base failure")

	t.Run("wrap keeps chain", func(t *testing.T) {
		err := Wrap(base, "context")
		require.Error(t, err)
		assert.True(t, Is(err, base))
		assert.Equal(t, "context: base failure", err.Error())
	})

	t.Run("wrap nil is nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "context"))
		assert.NoError(t, Wrapf(nil, "context %d", 1))
	})

	t.Run("wrapf formats", func(t *testing.T) {
		err := Wrapf(base, "attempt %d", 3)
		assert.Equal(t, "attempt 3: base failure", err.Error())
		assert.True(t, Is(err, base))
	})
}

func TestWithCode(t *testing.T) {
	base := New("boom")

	t.Run("code is extractable", func(t *testing.T) {
		err := WithCode(base, "bad_input")
		assert.Equal(t, "bad_input", GetCode(err))
		assert.True(t, Is(err, base))
	})

	t.Run("wrapped code survives", func(t *testing.T) {
		err := Wrap(WithCode(base, "bad_input"), "outer")
		assert.Equal(t, "bad_input", GetCode(err))
	})

	t.Run("no code", func(t *testing.T) {
		assert.Equal(t, "", GetCode(base))
		assert.Equal(t, "", GetCode(nil))
	})

	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, WithCode(nil, "bad_input"))
	})
}

func TestCollector(t *testing.T) {
	var c Collector
	c.Collect(nil)
	assert.NoError(t, c.Err())

	first := New("first")
	c.Collect(first)
	c.Collect(New("second"))
	assert.Equal(t, first, c.Err())
}

func TestMust(t *testing.T) {
	assert.Equal(t, 42, Must(42, nil))
	assert.Panics(t, func() {
		Must(0, New("nope"))
	})
}
