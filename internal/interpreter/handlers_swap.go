package interpreter

import "github.com/hailam/duelrewind/internal/message"

// swapCardsApply exchanges the occupants of two already-occupied places.
// The operation is its own inverse, so both directions call this same
// function: swapping twice restores the original arrangement.
func swapCardsApply(e *Engine, m *message.SwapCards) error {
	p1, p2 := m.Card1.Place(), m.Card2.Place()
	c1, err := e.Board.GetCard(p1)
	if err != nil {
		return err
	}
	c2, err := e.Board.GetCard(p2)
	if err != nil {
		return err
	}
	e.Board.SetAt(p1, c2)
	e.Board.SetAt(p2, c1)
	return nil
}
