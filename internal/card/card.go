// Package card implements the Card record: an aggregate of
// temporal cells for every card attribute, plus a lazily-populated
// counter-type to counter-cell mapping.
package card

import "github.com/hailam/duelrewind/internal/temporal"

// Card is the full historied state of one physical card. Every field is a
// temporal.Cell so that any attribute can be advanced, retreated, or
// appended to independently. Each handler moves only the cells its message
// touches, so the cells of one card do not in general sit at the same
// cursor position; each cell's own history round-trips under
// forward/backward stepping.
type Card struct {
	Position  *temporal.Cell[uint32]
	Code      *temporal.Cell[uint32]
	Alias     *temporal.Cell[uint32]
	Type      *temporal.Cell[uint32]
	Rank      *temporal.Cell[uint32]
	Attribute *temporal.Cell[uint32]
	Race      *temporal.Cell[uint32]
	Owner     *temporal.Cell[uint32]
	LeftScale *temporal.Cell[uint32]
	RightScale *temporal.Cell[uint32]
	LinkArrows *temporal.Cell[uint32]

	Level   *temporal.Cell[int32]
	Atk     *temporal.Cell[int32]
	Def     *temporal.Cell[int32]
	BaseAtk *temporal.Cell[int32]
	BaseDef *temporal.Cell[int32]

	// Counters holds one cell per counter type ever observed on this
	// card, created lazily by CounterCell on first use.
	Counters map[uint32]*temporal.Cell[uint32]
}

// New constructs a card with every attribute cell at its sentinel and an
// empty counter map.
func New() *Card {
	return &Card{
		Position:   temporal.NewCell[uint32](),
		Code:       temporal.NewCell[uint32](),
		Alias:      temporal.NewCell[uint32](),
		Type:       temporal.NewCell[uint32](),
		Rank:       temporal.NewCell[uint32](),
		Attribute:  temporal.NewCell[uint32](),
		Race:       temporal.NewCell[uint32](),
		Owner:      temporal.NewCell[uint32](),
		LeftScale:  temporal.NewCell[uint32](),
		RightScale: temporal.NewCell[uint32](),
		LinkArrows: temporal.NewCell[uint32](),

		Level:   temporal.NewSignedCell(),
		Atk:     temporal.NewSignedCell(),
		Def:     temporal.NewSignedCell(),
		BaseAtk: temporal.NewSignedCell(),
		BaseDef: temporal.NewSignedCell(),

		Counters: make(map[uint32]*temporal.Cell[uint32]),
	}
}

// CounterCell returns the cell for counterType, creating it (at its
// sentinel) the first time that counter type is observed on this card.
func (c *Card) CounterCell(counterType uint32) *temporal.Cell[uint32] {
	cell, ok := c.Counters[counterType]
	if !ok {
		cell = temporal.NewCell[uint32]()
		c.Counters[counterType] = cell
	}
	return cell
}

// HasCounterCell reports whether counterType has ever been observed on
// this card, without creating one as a side effect.
func (c *Card) HasCounterCell(counterType uint32) bool {
	_, ok := c.Counters[counterType]
	return ok
}

// ClearCounters advances or retreats every counter cell in the direction
// of travel on a pile<->field transfer: appending a 0 going forward,
// retreating going backward. The counter history is kept, so a backward
// step recovers the counts the card held before the transfer.
func (c *Card) ClearCounters(advancing bool) {
	for _, cell := range c.Counters {
		if advancing {
			cell.AdvanceOrAppend(true, 0)
		} else {
			cell.Retreat()
		}
	}
}

// Cursor returns the cursor position of the card's Code cell. The card's
// other cells advance independently and may sit at different positions.
func (c *Card) Cursor() int {
	return c.Code.Cursor()
}
