package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("nil config rejected", func(t *testing.T) {
		_, err := New(nil)
		assert.Error(t, err)
	})

	t.Run("disabled returns noop", func(t *testing.T) {
		m, err := New(&Config{Enabled: false})
		require.NoError(t, err)
		_, ok := m.(*noopMeter)
		assert.True(t, ok)
	})

	t.Run("enabled builds instruments", func(t *testing.T) {
		m, err := New(&Config{Enabled: true, ServiceName: "test"})
		require.NoError(t, err)
		defer m.Shutdown(context.Background())

		c, err := m.Counter("test_total", "test counter")
		require.NoError(t, err)
		c.Inc(context.Background(), L("k", "v"))
		c.Add(context.Background(), 2)

		h, err := m.Histogram("test_seconds", "test histogram", WithUnit("s"))
		require.NoError(t, err)
		h.Record(context.Background(), 0.01)

		g, err := m.Gauge("test_gauge", "test gauge")
		require.NoError(t, err)
		g.Set(context.Background(), 1.5)
	})
}

func TestNoopMeter(t *testing.T) {
	m, err := New(&Config{})
	require.NoError(t, err)

	c, err := m.Counter("x", "d")
	require.NoError(t, err)
	c.Inc(context.Background())

	g, err := m.Gauge("x", "d")
	require.NoError(t, err)
	g.Set(context.Background(), 1)

	h, err := m.Histogram("x", "d")
	require.NoError(t, err)
	h.Record(context.Background(), 1)

	assert.NoError(t, m.Shutdown(context.Background()))
}

func TestLabel(t *testing.T) {
	l := L("method", "GET")
	assert.Equal(t, Label{Key: "method", Value: "GET"}, l)
	assert.Empty(t, toAttributes(nil))
	assert.Len(t, toAttributes([]Label{l}), 1)
}
