package interpreter

import (
	"github.com/hailam/duelrewind/internal/duel"
	"github.com/hailam/duelrewind/internal/message"
	"github.com/hailam/duelrewind/internal/place"
)

// drawForward moves len(m.Cards) cards from the top of player's main deck
// to the tail of their hand, one MoveSingle per card, then appends each
// moved card's revealed code. cards[i] pairs with hand position
// handSize+i, which falls out naturally from drawing in index order and
// recomputing the hand length on every iteration.
func drawForward(e *Engine, m *message.Draw, realtime bool) error {
	for _, ci := range m.Cards {
		deck, err := e.Board.GetPile(m.Player, place.MainDeck)
		if err != nil {
			return err
		}
		if len(deck) == 0 {
			return duel.NewError(duel.MalformedMessage, "Draw: main deck for player %d is empty", m.Player)
		}
		hand, err := e.Board.GetPile(m.Player, place.Hand)
		if err != nil {
			return err
		}
		from := place.New(m.Player, place.MainDeck, uint32(len(deck)-1))
		to := place.New(m.Player, place.Hand, uint32(len(hand)))
		if err := e.Board.MoveSingle(from, to, true); err != nil {
			return err
		}
		c, err := e.Board.GetCard(to)
		if err != nil {
			return err
		}
		c.Code.AdvanceOrAppend(realtime, ci.Code)
	}
	return nil
}

// drawBackward retreats each drawn card's code and returns it to the top
// of the deck, undoing draws in reverse order: cards[i] pairs with hand
// position handSize-1-i, where handSize is the hand's size before any of
// this message's draws are undone.
func drawBackward(e *Engine, m *message.Draw) error {
	for i := len(m.Cards) - 1; i >= 0; i-- {
		hand, err := e.Board.GetPile(m.Player, place.Hand)
		if err != nil {
			return err
		}
		if len(hand) == 0 {
			return duel.NewError(duel.MalformedMessage, "Draw backward: hand for player %d is empty", m.Player)
		}
		from := place.New(m.Player, place.Hand, uint32(len(hand)-1))
		c, err := e.Board.GetCard(from)
		if err != nil {
			return err
		}
		c.Code.Retreat()
		deck, err := e.Board.GetPile(m.Player, place.MainDeck)
		if err != nil {
			return err
		}
		to := place.New(m.Player, place.MainDeck, uint32(len(deck)))
		if err := e.Board.MoveSingle(from, to, false); err != nil {
			return err
		}
	}
	return nil
}
