package card

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCardSentinels(t *testing.T) {
	c := New()
	require.Equal(t, uint32(0), c.Code.Get())
	require.Equal(t, int32(-1), c.Level.Get())
	require.Equal(t, int32(-1), c.Atk.Get())
	require.Empty(t, c.Counters)
}

func TestCounterCellLazyCreate(t *testing.T) {
	c := New()
	require.False(t, c.HasCounterCell(7))

	cell := c.CounterCell(7)
	require.True(t, c.HasCounterCell(7))
	require.Equal(t, uint32(0), cell.Get())

	cell.AdvanceOrAppend(true, 2)
	require.Equal(t, uint32(2), c.CounterCell(7).Get())
}

func TestClearCountersForwardAndBackward(t *testing.T) {
	c := New()
	cell := c.CounterCell(3)
	cell.AdvanceOrAppend(true, 5)
	require.Equal(t, uint32(5), cell.Get())

	c.ClearCounters(true)
	require.Equal(t, uint32(0), cell.Get())

	c.ClearCounters(false)
	require.Equal(t, uint32(5), cell.Get())
}
