package duel

import (
	"github.com/hailam/duelrewind/internal/card"
	"github.com/hailam/duelrewind/internal/place"
)

// GetPile returns the pile for (controller, loc), failing with
// UnknownLocation if loc is not one of the five recognized pile kinds
// The returned slice is a read-only view; callers that
// need to mutate go through insertIntoPile/eraseFromPile below.
func (b *Board) GetPile(controller uint8, loc place.Location) ([]*card.Card, error) {
	if !place.PileKind(loc) {
		return nil, newErr(UnknownLocation, "%v is not a pile location", loc)
	}
	return b.Piles[controller][loc], nil
}

// GetCard resolves p to its Card, failing with MissingCard if the slot is
// empty.
func (b *Board) GetCard(p place.Place) (*card.Card, error) {
	if p.IsPile() {
		pile, err := b.GetPile(p.Controller, p.Location)
		if err != nil {
			return nil, err
		}
		if int(p.Sequence) >= len(pile) {
			return nil, newErr(MissingCard, "pile %v controller=%d seq=%d is empty", p.Location, p.Controller, p.Sequence)
		}
		return pile[p.Sequence], nil
	}
	c, ok := b.FieldZones[p]
	if !ok {
		return nil, newErr(MissingCard, "field place %+v is empty", p)
	}
	return c, nil
}

// insertIntoPile inserts c at index seq of (controller, loc), shifting
// later elements up by one so indices stay contiguous.
func (b *Board) insertIntoPile(controller uint8, loc place.Location, seq uint32, c *card.Card) {
	pile := b.Piles[controller][loc]
	idx := int(seq)
	if idx > len(pile) {
		idx = len(pile)
	}
	pile = append(pile, nil)
	copy(pile[idx+1:], pile[idx:])
	pile[idx] = c
	b.Piles[controller][loc] = pile
}

// eraseFromPile removes and returns the card at index seq of (controller,
// loc), shifting later elements down by one so indices stay contiguous.
func (b *Board) eraseFromPile(controller uint8, loc place.Location, seq uint32) (*card.Card, error) {
	pile := b.Piles[controller][loc]
	if int(seq) >= len(pile) {
		return nil, newErr(MissingCard, "erase: pile %v controller=%d seq=%d is empty", loc, controller, seq)
	}
	c := pile[seq]
	pile = append(pile[:seq], pile[seq+1:]...)
	b.Piles[controller][loc] = pile
	return c, nil
}

// setField places c at a field Place, first shifting the overlays at and
// above p up by one if p addresses an overlay slot.
func (b *Board) setField(p place.Place, c *card.Card) {
	if p.IsOverlay() {
		b.shiftOverlaysUp(p)
	}
	b.FieldZones[p] = c
}

// clearField removes and returns the card at a field Place, compacting the
// overlay stack above it down by one if p addresses an overlay slot.
func (b *Board) clearField(p place.Place) *card.Card {
	c := b.FieldZones[p]
	delete(b.FieldZones, p)
	if p.IsOverlay() {
		b.shiftOverlaysDown(p)
	}
	return c
}

// shiftOverlaysUp makes room to insert at slot p: every overlay already
// occupying index >= p.OverlaySequence on the same host is moved up one
// index, processed from the top of the stack down so no slot is
// overwritten before it is read.
func (b *Board) shiftOverlaysUp(p place.Place) {
	maxIdx := p.OverlaySequence - 1
	for other := range b.FieldZones {
		if sameHost(other, p) && other.OverlaySequence > maxIdx {
			maxIdx = other.OverlaySequence
		}
	}
	for idx := maxIdx; idx >= p.OverlaySequence; idx-- {
		cur := p
		cur.OverlaySequence = idx
		c, ok := b.FieldZones[cur]
		if !ok {
			continue
		}
		delete(b.FieldZones, cur)
		next := p
		next.OverlaySequence = idx + 1
		b.FieldZones[next] = c
	}
}

// shiftOverlaysDown closes the gap left by removing slot p: every overlay
// occupying an index above p.OverlaySequence on the same host moves down
// one index, processed from the bottom of the gap up.
func (b *Board) shiftOverlaysDown(p place.Place) {
	idx := p.OverlaySequence
	for {
		cur := p
		cur.OverlaySequence = idx + 1
		c, ok := b.FieldZones[cur]
		if !ok {
			break
		}
		delete(b.FieldZones, cur)
		prev := p
		prev.OverlaySequence = idx
		b.FieldZones[prev] = c
		idx++
	}
}

// sameHost reports whether a and b address overlay slots on the same host
// card (same controller, zone, and zone sequence), ignoring overlay index.
func sameHost(a, p place.Place) bool {
	return a.Controller == p.Controller && a.Location == p.Location && a.Sequence == p.Sequence && a.IsOverlay()
}

// MoveSingle transfers exactly one card between from and to, handling the
// four pile/field endpoint combinations. It fails with
// IllegalMove if from == to. advancing selects the direction ClearCounters
// travels on pile<->field transfers.
func (b *Board) MoveSingle(from, to place.Place, advancing bool) error {
	if from == to {
		return newErr(IllegalMove, "MoveSingle: from == to (%+v)", from)
	}

	fromPile, toPile := from.IsPile(), to.IsPile()
	switch {
	case fromPile && toPile:
		c, err := b.eraseFromPile(from.Controller, from.Location, from.Sequence)
		if err != nil {
			return err
		}
		b.insertIntoPile(to.Controller, to.Location, to.Sequence, c)

	case fromPile && !toPile:
		c, err := b.eraseFromPile(from.Controller, from.Location, from.Sequence)
		if err != nil {
			return err
		}
		b.setField(to, c)
		c.ClearCounters(advancing)

	case !fromPile && toPile:
		c, err := b.GetCard(from)
		if err != nil {
			return err
		}
		b.clearField(from)
		b.insertIntoPile(to.Controller, to.Location, to.Sequence, c)
		c.ClearCounters(advancing)

	default: // field -> field
		c, err := b.GetCard(from)
		if err != nil {
			return err
		}
		b.clearField(from)
		b.setField(to, c)
	}
	return nil
}
