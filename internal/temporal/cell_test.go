package temporal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCellSentinel(t *testing.T) {
	u := NewCell[uint32]()
	require.Equal(t, uint32(0), u.Get())
	require.Equal(t, 0, u.Cursor())

	b := NewCell[bool]()
	require.Equal(t, false, b.Get())

	s := NewSignedCell()
	require.Equal(t, int32(-1), s.Get())
}

func TestAdvanceOrAppendRealtime(t *testing.T) {
	c := NewCell[uint32]()
	c.AdvanceOrAppend(true, 111)
	require.Equal(t, uint32(111), c.Get())
	require.Equal(t, 1, c.Cursor())
	require.Equal(t, 2, c.Len())

	c.AdvanceOrAppend(true, 222)
	require.Equal(t, uint32(222), c.Get())
	require.Equal(t, 2, c.Cursor())
}

func TestAdvanceOrAppendReplay(t *testing.T) {
	c := NewCell[uint32]()
	c.AdvanceOrAppend(true, 111)
	c.Retreat()
	require.Equal(t, uint32(0), c.Get())

	// Re-walk forward over the already-recorded value.
	c.AdvanceOrAppend(false, 0)
	require.Equal(t, uint32(111), c.Get())
}

func TestRetreatPastSentinelPanics(t *testing.T) {
	c := NewCell[uint32]()
	require.Panics(t, func() { c.Retreat() })
}

func TestAdvancePastTailWithoutAppendPanics(t *testing.T) {
	c := NewCell[uint32]()
	require.Panics(t, func() { c.AdvanceOrAppend(false, 0) })
}

func TestRoundTrip(t *testing.T) {
	c := NewCell[uint32]()
	for i := uint32(1); i <= 5; i++ {
		c.AdvanceOrAppend(true, i*10)
	}
	require.Equal(t, uint32(50), c.Get())

	for i := 0; i < 5; i++ {
		c.Retreat()
	}
	require.Equal(t, uint32(0), c.Get())
	require.Equal(t, 0, c.Cursor())
}
