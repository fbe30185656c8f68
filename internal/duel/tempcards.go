package duel

import (
	"github.com/hailam/duelrewind/internal/card"
	"github.com/hailam/duelrewind/internal/place"
)

// Stash moves c into the TempCards graveyard of removals under
// (state, p) — the destination a card takes when it ceases to exist at a
// known forward state. The forward handlers that call this must be
// entered at most once per (state, p) so two cards never collide under
// the same key.
func (b *Board) Stash(state int, p place.Place, c *card.Card) {
	b.TempCards[TempKey{State: state, Place: p}] = c
}

// Unstash removes and returns the card previously stashed under
// (state, p), if any.
func (b *Board) Unstash(state int, p place.Place) (*card.Card, bool) {
	key := TempKey{State: state, Place: p}
	c, ok := b.TempCards[key]
	if ok {
		delete(b.TempCards, key)
	}
	return c, ok
}
