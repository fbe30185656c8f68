package interpreter

import (
	"github.com/hailam/duelrewind/internal/duel"
	"github.com/hailam/duelrewind/internal/message"
)

// updateCardForward applies one of the four UpdateCard variants: DeckTop
// addresses a card by reverse offset from the pile top and appends its
// revealed code; Move transfers a card and appends its revealed
// code/position; PosChange and Set locate the card by Previous.Place()
// (unchanged by either variant) and append code/position.
func updateCardForward(e *Engine, m *message.UpdateCard, realtime bool) error {
	switch m.Reason {
	case message.DeckTop:
		pile, err := e.Board.GetPile(m.Previous.Controller, m.Previous.Location)
		if err != nil {
			return err
		}
		idx := len(pile) - 1 - int(m.Previous.Sequence)
		if idx < 0 || idx >= len(pile) {
			return duel.NewError(duel.MalformedMessage,
				"UpdateCard DeckTop: reverse offset %d out of range for pile of %d", m.Previous.Sequence, len(pile))
		}
		pile[idx].Code.AdvanceOrAppend(realtime, m.Current.Code)
		return nil

	case message.Move:
		if err := e.Board.MoveSingle(m.Previous.Place(), m.Current.Place(), true); err != nil {
			return err
		}
		c, err := e.Board.GetCard(m.Current.Place())
		if err != nil {
			return err
		}
		c.Code.AdvanceOrAppend(realtime, m.Current.Code)
		c.Position.AdvanceOrAppend(realtime, uint32(m.Current.Position))
		return nil

	case message.PosChange:
		c, err := e.Board.GetCard(m.Previous.Place())
		if err != nil {
			return err
		}
		c.Code.AdvanceOrAppend(realtime, m.Current.Code)
		c.Position.AdvanceOrAppend(realtime, uint32(m.Current.Position))
		return nil

	case message.Set:
		c, err := e.Board.GetCard(m.Previous.Place())
		if err != nil {
			return err
		}
		c.Code.AdvanceOrAppend(realtime, m.Current.Code)
		c.Position.AdvanceOrAppend(realtime, uint32(m.Current.Position))
		return nil

	default:
		return duel.NewError(duel.MalformedMessage, "UpdateCard: unknown reason %d", m.Reason)
	}
}

// updateCardBackward mirrors updateCardForward: DeckTop retreats the code
// it appended; Move reads code/position from the card at Current.Place(),
// retreats both, then reverses the transfer; PosChange/Set retreat the
// cells they advanced on the card at Previous.Place().
func updateCardBackward(e *Engine, m *message.UpdateCard) error {
	switch m.Reason {
	case message.DeckTop:
		pile, err := e.Board.GetPile(m.Previous.Controller, m.Previous.Location)
		if err != nil {
			return err
		}
		idx := len(pile) - 1 - int(m.Previous.Sequence)
		if idx < 0 || idx >= len(pile) {
			return duel.NewError(duel.MalformedMessage,
				"UpdateCard DeckTop: reverse offset %d out of range for pile of %d", m.Previous.Sequence, len(pile))
		}
		pile[idx].Code.Retreat()
		return nil

	case message.Move:
		c, err := e.Board.GetCard(m.Current.Place())
		if err != nil {
			return err
		}
		c.Code.Retreat()
		c.Position.Retreat()
		return e.Board.MoveSingle(m.Current.Place(), m.Previous.Place(), false)

	case message.PosChange:
		c, err := e.Board.GetCard(m.Previous.Place())
		if err != nil {
			return err
		}
		c.Code.Retreat()
		c.Position.Retreat()
		return nil

	case message.Set:
		c, err := e.Board.GetCard(m.Previous.Place())
		if err != nil {
			return err
		}
		c.Code.Retreat()
		c.Position.Retreat()
		return nil

	default:
		return duel.NewError(duel.MalformedMessage, "UpdateCard: unknown reason %d", m.Reason)
	}
}
