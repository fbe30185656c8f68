package interpreter

import (
	"testing"

	"github.com/hailam/duelrewind/internal/message"
	"github.com/hailam/duelrewind/internal/place"
	"github.com/stretchr/testify/require"
)

func TestShuffleLocationAppendsRevealedCodes(t *testing.T) {
	e, b := newTestEngine(t)
	wanted := []message.CardInfo{
		{Code: 104}, {Code: 100}, {Code: 103}, {Code: 101}, {Code: 102},
	}
	e.Append(message.Any{ShuffleLocation: &message.ShuffleLocation{
		Player:   0,
		Location: place.MainDeck,
		Shuffled: wanted,
	}})

	require.NoError(t, e.Forward())
	pile, _ := b.GetPile(0, place.MainDeck)
	require.Len(t, pile, 5)
	for i, w := range wanted {
		require.Equal(t, w.Code, pile[i].Code.Get())
	}

	require.NoError(t, e.Backward())
	pile, _ = b.GetPile(0, place.MainDeck)
	for _, c := range pile {
		require.Equal(t, uint32(0), c.Code.Get())
	}
}

func TestShuffleLocationUnobservableAppendsZero(t *testing.T) {
	e, b := newTestEngine(t)
	pile, _ := b.GetPile(0, place.MainDeck)
	for _, c := range pile {
		c.Code.AdvanceOrAppend(true, 777)
	}

	e.Append(message.Any{ShuffleLocation: &message.ShuffleLocation{
		Player:   0,
		Location: place.MainDeck,
		Shuffled: nil,
	}})

	require.NoError(t, e.Forward())
	pile, _ = b.GetPile(0, place.MainDeck)
	for _, c := range pile {
		require.Equal(t, uint32(0), c.Code.Get())
	}

	require.NoError(t, e.Backward())
	pile, _ = b.GetPile(0, place.MainDeck)
	for _, c := range pile {
		require.Equal(t, uint32(777), c.Code.Get())
	}
}

func TestShuffleSetCardsAppliesPerFieldZoneEntry(t *testing.T) {
	e, b := newTestEngine(t)
	require.NoError(t, b.FillPile(0, place.Hand, 1))

	field := message.CardInfo{Controller: 0, Location: place.MonsterZone, Sequence: 2}
	e.Append(message.Any{UpdateCard: &message.UpdateCard{
		Reason:   message.Move,
		Previous: message.CardInfo{Controller: 0, Location: place.Hand, Sequence: 0},
		Current:  message.CardInfo{Controller: 0, Location: place.MonsterZone, Sequence: 2, Code: 555, Position: message.FaceUpAttack},
	}})
	e.Append(message.Any{ShuffleSetCards: &message.ShuffleSetCards{
		Previous: []message.CardInfo{field},
		Current:  []message.CardInfo{{Code: 999, Position: message.FaceDownDefense}},
	}})

	require.NoError(t, e.Forward()) // move onto field
	require.NoError(t, e.Forward()) // shuffle-set-cards

	c, err := b.GetCard(field.Place())
	require.NoError(t, err)
	require.Equal(t, uint32(999), c.Code.Get())
	require.Equal(t, uint32(message.FaceDownDefense), c.Position.Get())

	require.NoError(t, e.Backward()) // undo shuffle-set-cards
	c, err = b.GetCard(field.Place())
	require.NoError(t, err)
	require.Equal(t, uint32(555), c.Code.Get())
	require.Equal(t, uint32(message.FaceUpAttack), c.Position.Get())

	require.NoError(t, e.Backward()) // undo move
	_, err = b.GetCard(field.Place())
	require.Error(t, err)
}

func TestShuffleSetCardsUnobservableKeepsPreviousPosition(t *testing.T) {
	e, b := newTestEngine(t)
	require.NoError(t, b.FillPile(0, place.Hand, 1))

	field := message.CardInfo{Controller: 0, Location: place.MonsterZone, Sequence: 1, Position: message.FaceDownDefense}
	e.Append(message.Any{UpdateCard: &message.UpdateCard{
		Reason:   message.Move,
		Previous: message.CardInfo{Controller: 0, Location: place.Hand, Sequence: 0},
		Current:  message.CardInfo{Controller: 0, Location: place.MonsterZone, Sequence: 1, Code: 42, Position: message.FaceDownDefense},
	}})
	e.Append(message.Any{ShuffleSetCards: &message.ShuffleSetCards{
		Previous: []message.CardInfo{field},
		Current:  nil,
	}})

	require.NoError(t, e.Forward())
	require.NoError(t, e.Forward())

	c, err := b.GetCard(field.Place())
	require.NoError(t, err)
	require.Equal(t, uint32(0), c.Code.Get())
	require.Equal(t, uint32(message.FaceDownDefense), c.Position.Get())

	require.NoError(t, e.Backward())
	c, err = b.GetCard(field.Place())
	require.NoError(t, err)
	require.Equal(t, uint32(42), c.Code.Get())
}
