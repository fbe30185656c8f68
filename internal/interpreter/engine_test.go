package interpreter

import (
	"testing"

	"github.com/hailam/duelrewind/internal/duel"
	"github.com/hailam/duelrewind/internal/message"
	"github.com/hailam/duelrewind/internal/place"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*Engine, *duel.Board) {
	t.Helper()
	b := duel.New()
	require.NoError(t, b.FillPile(0, place.MainDeck, 5))
	return New(b, nil), b
}

func TestDrawThenUndraw(t *testing.T) {
	e, b := newTestEngine(t)
	e.Append(message.Any{Draw: &message.Draw{
		Player: 0,
		Cards:  []message.CardInfo{{Code: 111}, {Code: 222}},
	}})

	require.NoError(t, e.Forward())
	deck, _ := b.GetPile(0, place.MainDeck)
	hand, _ := b.GetPile(0, place.Hand)
	require.Len(t, deck, 3)
	require.Len(t, hand, 2)
	require.Equal(t, uint32(111), hand[0].Code.Get())
	require.Equal(t, uint32(222), hand[1].Code.Get())
	require.Equal(t, 1, e.CurrentState())
	require.Equal(t, 1, e.ProcessedStates())
	require.True(t, e.IsRealtime())

	require.NoError(t, e.Backward())
	deck, _ = b.GetPile(0, place.MainDeck)
	hand, _ = b.GetPile(0, place.Hand)
	require.Len(t, deck, 5)
	require.Len(t, hand, 0)
	require.Equal(t, uint32(0), deck[0].Code.Get())
	require.Equal(t, uint32(0), deck[1].Code.Get())
	require.Equal(t, 0, e.CurrentState())
}

func TestSummonToMonsterZone(t *testing.T) {
	e, b := newTestEngine(t)
	require.NoError(t, b.FillPile(0, place.Hand, 1))

	from := message.CardInfo{Controller: 0, Location: place.Hand, Sequence: 0}
	to := message.CardInfo{Controller: 0, Location: place.MonsterZone, Sequence: 3, Code: 4007, Position: message.FaceUpAttack}
	e.Append(message.Any{UpdateCard: &message.UpdateCard{
		Reason: message.Move, Previous: from, Current: to,
	}})

	require.NoError(t, e.Forward())
	c, err := b.GetCard(to.Place())
	require.NoError(t, err)
	require.Equal(t, uint32(4007), c.Code.Get())
	require.Equal(t, uint32(message.FaceUpAttack), c.Position.Get())

	require.NoError(t, e.Backward())
	_, err = b.GetCard(to.Place())
	require.Error(t, err)
	h, _ := b.GetPile(0, place.Hand)
	require.Len(t, h, 1)
	require.Equal(t, uint32(0), h[0].Code.Get())
}

func TestUpdateCardDeckTopAppendsRevealedCode(t *testing.T) {
	e, b := newTestEngine(t)
	prev := message.CardInfo{Controller: 0, Location: place.MainDeck, Sequence: 0}
	e.Append(message.Any{UpdateCard: &message.UpdateCard{
		Reason: message.DeckTop, Previous: prev, Current: message.CardInfo{Code: 9001},
	}})

	require.NoError(t, e.Forward())
	deck, _ := b.GetPile(0, place.MainDeck)
	top := deck[len(deck)-1]
	require.Equal(t, uint32(9001), top.Code.Get())

	require.NoError(t, e.Backward())
	require.Equal(t, uint32(0), top.Code.Get())
}

// TestCounterAddRemoveWorkedExample walks ADD 2 -> ADD 3 -> REMOVE 1 three
// steps forward (expecting 2, 5, 4) and back (5, 2, 0), exercising the
// ADD-appends-sum / REMOVE-appends-difference / retreat-either-way rule.
func TestCounterAddRemoveWorkedExample(t *testing.T) {
	e, b := newTestEngine(t)
	require.NoError(t, b.FillPile(0, place.Hand, 1))
	p := place.New(0, place.MonsterZone, 0)
	require.NoError(t, b.MoveSingle(place.New(0, place.Hand, 0), p, true))
	cardAt, err := b.GetCard(p)
	require.NoError(t, err)

	info := message.CardInfo{Controller: 0, Location: place.MonsterZone, Sequence: 0}
	counterType := uint32(1)

	e.Append(message.Any{CounterChange: &message.CounterChange{Place: info, Counter: message.Counter{Type: counterType, Count: 2}, Kind: message.CounterAdd}})
	e.Append(message.Any{CounterChange: &message.CounterChange{Place: info, Counter: message.Counter{Type: counterType, Count: 3}, Kind: message.CounterAdd}})
	e.Append(message.Any{CounterChange: &message.CounterChange{Place: info, Counter: message.Counter{Type: counterType, Count: 1}, Kind: message.CounterRemove}})

	require.NoError(t, e.Forward())
	require.Equal(t, uint32(2), cardAt.CounterCell(counterType).Get())
	require.NoError(t, e.Forward())
	require.Equal(t, uint32(5), cardAt.CounterCell(counterType).Get())
	require.NoError(t, e.Forward())
	require.Equal(t, uint32(4), cardAt.CounterCell(counterType).Get())

	require.NoError(t, e.Backward())
	require.Equal(t, uint32(5), cardAt.CounterCell(counterType).Get())
	require.NoError(t, e.Backward())
	require.Equal(t, uint32(2), cardAt.CounterCell(counterType).Get())
	require.NoError(t, e.Backward())
	require.Equal(t, uint32(0), cardAt.CounterCell(counterType).Get())
}

func TestLpChangeClampsAtZero(t *testing.T) {
	e, b := newTestEngine(t)
	b.SetLP(0, 1000)
	e.Append(message.Any{LpChange: &message.LpChange{Player: 0, Kind: message.LpDamage, Amount: 5000}})

	require.NoError(t, e.Forward())
	require.Equal(t, uint32(0), b.PlayerLP[0].Get())

	require.NoError(t, e.Backward())
	require.Equal(t, uint32(1000), b.PlayerLP[0].Get())
}

func TestDisableZonesForwardAndBack(t *testing.T) {
	e, b := newTestEngine(t)
	target := place.New(1, place.MonsterZone, 3)
	e.Append(message.Any{DisableZones: &message.DisableZones{Places: []place.Place{target}}})

	require.NoError(t, e.Forward())
	for p, cell := range b.DisabledZones {
		if p == target {
			require.True(t, cell.Get())
		} else {
			require.False(t, cell.Get())
		}
	}

	require.NoError(t, e.Backward())
	for _, cell := range b.DisabledZones {
		require.False(t, cell.Get())
	}
}

func TestRemoveThenAddRestoresIdentity(t *testing.T) {
	e, b := newTestEngine(t)
	require.NoError(t, b.FillPile(0, place.Graveyard, 1))
	pile, _ := b.GetPile(0, place.Graveyard)
	original := pile[0]
	original.Code.AdvanceOrAppend(true, 99)
	original.CounterCell(2).AdvanceOrAppend(true, 7)

	info := message.CardInfo{Controller: 0, Location: place.Graveyard, Sequence: 0}
	e.Append(message.Any{RemoveCard: &message.RemoveCard{Card: info}})
	e.Append(message.Any{AddCard: &message.AddCard{Card: info}})

	require.NoError(t, e.Forward()) // remove
	_, err := b.GetCard(info.Place())
	require.Error(t, err)

	require.NoError(t, e.Forward()) // add back
	got, err := b.GetCard(info.Place())
	require.NoError(t, err)
	require.Same(t, original, got)
	require.Equal(t, uint32(99), got.Code.Get())
	require.Equal(t, uint32(7), got.CounterCell(2).Get())

	require.NoError(t, e.Backward()) // undo add
	_, err = b.GetCard(info.Place())
	require.Error(t, err)

	require.NoError(t, e.Backward()) // undo remove
	got2, err := b.GetCard(info.Place())
	require.NoError(t, err)
	require.Same(t, original, got2)
	require.Equal(t, uint32(7), got2.CounterCell(2).Get())
}

func TestSwapCardsIsSelfInverse(t *testing.T) {
	e, b := newTestEngine(t)
	require.NoError(t, b.FillPile(0, place.Hand, 2))
	p1 := place.New(0, place.MonsterZone, 0)
	p2 := place.New(0, place.MonsterZone, 1)
	require.NoError(t, b.MoveSingle(place.New(0, place.Hand, 0), p1, true))
	require.NoError(t, b.MoveSingle(place.New(0, place.Hand, 0), p2, true))
	c1, err := b.GetCard(p1)
	require.NoError(t, err)
	c2, err := b.GetCard(p2)
	require.NoError(t, err)

	info1 := message.CardInfo{Controller: 0, Location: place.MonsterZone, Sequence: 0}
	info2 := message.CardInfo{Controller: 0, Location: place.MonsterZone, Sequence: 1}
	e.Append(message.Any{SwapCards: &message.SwapCards{Card1: info1, Card2: info2}})

	require.NoError(t, e.Forward())
	got1, _ := b.GetCard(p1)
	got2, _ := b.GetCard(p2)
	require.Same(t, c2, got1)
	require.Same(t, c1, got2)

	require.NoError(t, e.Backward())
	got1, _ = b.GetCard(p1)
	got2, _ = b.GetCard(p2)
	require.Same(t, c1, got1)
	require.Same(t, c2, got2)
}

func TestNewTurnAndNewPhaseRoundTrip(t *testing.T) {
	e, b := newTestEngine(t)
	e.Append(message.Any{NewTurn: &message.NewTurn{TurnPlayer: 1}})
	e.Append(message.Any{NewPhase: &message.NewPhase{Phase: 3}})

	require.NoError(t, e.Forward())
	require.NoError(t, e.Forward())
	require.Equal(t, uint32(1), b.TurnPlayer.Get())
	require.Equal(t, uint32(3), b.Phase.Get())
	require.Equal(t, uint32(1), b.Turn)

	require.NoError(t, e.Backward())
	require.NoError(t, e.Backward())
	require.Equal(t, uint32(0), b.TurnPlayer.Get())
	require.Equal(t, uint32(0), b.Phase.Get())
	require.Equal(t, uint32(0), b.Turn)
}

func TestBackwardAtHeadIsNoOp(t *testing.T) {
	e, _ := newTestEngine(t)
	require.NoError(t, e.Backward())
	require.Equal(t, 0, e.CurrentState())
}

func TestForwardAtTailIsNoOp(t *testing.T) {
	e, _ := newTestEngine(t)
	e.Append(message.Any{NonCritical: &message.NonCritical{Kind: "Hint"}})
	require.NoError(t, e.Forward())
	require.NoError(t, e.Forward())
	require.Equal(t, 1, e.CurrentState())
}
