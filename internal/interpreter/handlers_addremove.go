package interpreter

import (
	"github.com/hailam/duelrewind/internal/card"
	"github.com/hailam/duelrewind/internal/message"
)

// addCardForward brings a card into existence at m.Card.Place(). If a
// backward step over this same AddCard stashed its card under the current
// state, that card is restored instead of minting a new one, so it keeps
// its identity and history across a backward-then-forward replay. A card
// taken away by an earlier RemoveCard is not reused here: it stays stashed
// under that RemoveCard's state.
func addCardForward(e *Engine, m *message.AddCard, realtime bool) error {
	p := m.Card.Place()
	c, ok := e.Board.Unstash(e.CurrentState(), p)
	if !ok {
		c = card.New()
		c.Code.AdvanceOrAppend(true, m.Card.Code)
		c.Position.AdvanceOrAppend(true, uint32(m.Card.Position))
	} else if realtime {
		c.Code.AdvanceOrAppend(true, m.Card.Code)
		c.Position.AdvanceOrAppend(true, uint32(m.Card.Position))
	} else {
		c.Code.AdvanceOrAppend(false, 0)
		c.Position.AdvanceOrAppend(false, 0)
	}
	e.Board.PlaceAt(p, c)
	return nil
}

// addCardBackward removes the card added at m.Card.Place() and stashes it
// under the state being undone, so a later forward replay past this point
// can restore the same identity rather than minting a fresh one.
func addCardBackward(e *Engine, m *message.AddCard) error {
	p := m.Card.Place()
	c, err := e.Board.RemoveAt(p)
	if err != nil {
		return err
	}
	c.Code.Retreat()
	c.Position.Retreat()
	e.Board.Stash(e.CurrentState(), p, c)
	return nil
}

// removeCardForward takes the card at m.Card.Place() out of existence and
// stashes it under the current state, so a later backward step can bring
// it back with its full history intact.
func removeCardForward(e *Engine, m *message.RemoveCard) error {
	p := m.Card.Place()
	c, err := e.Board.RemoveAt(p)
	if err != nil {
		return err
	}
	e.Board.Stash(e.CurrentState(), p, c)
	return nil
}

// removeCardBackward restores the card stashed by removeCardForward to
// its original place.
func removeCardBackward(e *Engine, m *message.RemoveCard) error {
	p := m.Card.Place()
	c, ok := e.Board.Unstash(e.CurrentState(), p)
	if !ok {
		c = card.New()
		c.Code.AdvanceOrAppend(true, m.Card.Code)
		c.Position.AdvanceOrAppend(true, uint32(m.Card.Position))
	}
	e.Board.PlaceAt(p, c)
	return nil
}
