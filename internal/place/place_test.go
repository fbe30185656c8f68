package place

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPile(t *testing.T) {
	require.True(t, New(0, MainDeck, 0).IsPile())
	require.True(t, New(0, Hand, 0).IsPile())
	require.True(t, New(0, Graveyard, 0).IsPile())
	require.True(t, New(0, Banished, 0).IsPile())
	require.True(t, New(0, ExtraDeck, 0).IsPile())

	require.False(t, New(0, MonsterZone, 2).IsPile())
	require.False(t, New(0, SpellZone, 0).IsPile())
	require.False(t, New(0, FieldZone, 0).IsPile())
	require.False(t, New(0, PendulumZone, 0).IsPile())
	require.False(t, NewOverlay(0, MonsterZone, 0, 0).IsPile())
}

func TestEquality(t *testing.T) {
	a := New(0, MonsterZone, 2)
	b := New(0, MonsterZone, 2)
	c := New(1, MonsterZone, 2)
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}

func TestOverlay(t *testing.T) {
	p := NewOverlay(0, MonsterZone, 3, 1)
	require.True(t, p.IsOverlay())
	require.False(t, p.IsPile())
	require.Equal(t, int32(1), p.OverlaySequence)

	q := New(0, MonsterZone, 3)
	require.False(t, q.IsOverlay())
}

func TestLess(t *testing.T) {
	a := New(0, MonsterZone, 1)
	b := New(0, MonsterZone, 2)
	c := New(1, MonsterZone, 0)
	require.True(t, Less(a, b))
	require.False(t, Less(b, a))
	require.True(t, Less(b, c))
}

func TestPileKind(t *testing.T) {
	require.True(t, PileKind(Hand))
	require.False(t, PileKind(MonsterZone))
	require.False(t, PileKind(Overlay))
}
