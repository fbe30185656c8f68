// Package duel implements the board state container: the ten piles, the
// field-slot map with overlay stacks, the fixed-domain disabled-zones map,
// the temp-card graveyard of removals, and the per-player scalars (life
// points, turn, turn player, phase).
package duel

import (
	"github.com/hailam/duelrewind/internal/card"
	"github.com/hailam/duelrewind/internal/message"
	"github.com/hailam/duelrewind/internal/place"
	"github.com/hailam/duelrewind/internal/temporal"
)

// pileLocations enumerates the five locations get_pile / the pile storage
// recognize.
var pileLocations = [...]place.Location{
	place.MainDeck,
	place.Hand,
	place.Graveyard,
	place.Banished,
	place.ExtraDeck,
}

// disabledDomain enumerates the fixed (controller, zone) pairs that
// DisabledZones holds a cell for: two controllers ×
// {MonsterZone 0..6, SpellZone 0..5, PendulumZone 0..1}. Both controllers
// are visited — see DESIGN.md's resolution of that domain question.
func disabledDomain() []place.Place {
	var places []place.Place
	for controller := uint8(0); controller < 2; controller++ {
		for seq := uint32(0); seq <= 6; seq++ {
			places = append(places, place.New(controller, place.MonsterZone, seq))
		}
		for seq := uint32(0); seq <= 5; seq++ {
			places = append(places, place.New(controller, place.SpellZone, seq))
		}
		for seq := uint32(0); seq <= 1; seq++ {
			places = append(places, place.New(controller, place.PendulumZone, seq))
		}
	}
	return places
}

// TempKey keys the temp_cards graveyard of removals: a card that ceased to
// exist at forward-state State is held under (State, Place) until a
// backward step crosses State again.
type TempKey struct {
	State int
	Place place.Place
}

// Board is the mutable ownership root for one duel. Every Card existing
// on the board lives in exactly one of Piles, FieldZones, or TempCards
// at once.
type Board struct {
	Piles         [2]map[place.Location][]*card.Card
	FieldZones    map[place.Place]*card.Card
	DisabledZones map[place.Place]*temporal.Cell[bool]
	TempCards     map[TempKey]*card.Card

	PlayerLP   [2]*temporal.Cell[uint32]
	TurnPlayer *temporal.Cell[uint32]
	Phase      *temporal.Cell[uint32]
	Turn       uint32 // plain counter, no history.

	disabledKeyset map[place.Place]bool // frozen at construction, for keyset-drift checks.
}

// New constructs an empty board: all ten piles empty, no field occupants,
// the full disabled_zones domain present and false, life points and
// turn/phase cells at their sentinels.
func New() *Board {
	b := &Board{
		FieldZones:    make(map[place.Place]*card.Card),
		DisabledZones: make(map[place.Place]*temporal.Cell[bool]),
		TempCards:     make(map[TempKey]*card.Card),
		PlayerLP:      [2]*temporal.Cell[uint32]{temporal.NewCell[uint32](), temporal.NewCell[uint32]()},
		TurnPlayer:    temporal.NewCell[uint32](),
		Phase:         temporal.NewCell[uint32](),
	}
	for controller := 0; controller < 2; controller++ {
		b.Piles[controller] = make(map[place.Location][]*card.Card, len(pileLocations))
		for _, loc := range pileLocations {
			b.Piles[controller][loc] = nil
		}
	}
	b.disabledKeyset = make(map[place.Place]bool)
	for _, p := range disabledDomain() {
		b.DisabledZones[p] = temporal.NewCell[bool]()
		b.disabledKeyset[p] = true
	}
	return b
}

// FillPile seeds a pile with n freshly-constructed, face-down cards before
// the first forward step. It appends to each new card's Position cell so
// the seeded state is itself a recorded history entry rather than a
// bypass of the temporal model.
func (b *Board) FillPile(controller uint8, loc place.Location, n int) error {
	if !place.PileKind(loc) {
		return newErr(UnknownLocation, "FillPile: %v is not a pile location", loc)
	}
	for i := 0; i < n; i++ {
		c := card.New()
		c.Position.AdvanceOrAppend(true, uint32(message.FaceDown))
		b.Piles[controller][loc] = append(b.Piles[controller][loc], c)
	}
	return nil
}

// SetLP seeds a player's life points before the first forward step.
func (b *Board) SetLP(controller uint8, amount uint32) {
	b.PlayerLP[controller].AdvanceOrAppend(true, amount)
}

// PlaceAt inserts c at p: into its pile at the given index (shifting
// later entries) if p is a pile place, or into field_zones (compacting
// overlays as needed) otherwise. Used by the AddCard/RemoveCard handlers
// to restore a card that was stashed in TempCards.
func (b *Board) PlaceAt(p place.Place, c *card.Card) {
	if p.IsPile() {
		b.insertIntoPile(p.Controller, p.Location, p.Sequence, c)
		return
	}
	b.setField(p, c)
}

// RemoveAt erases and returns the card at p, failing with MissingCard if
// the slot is empty.
func (b *Board) RemoveAt(p place.Place) (*card.Card, error) {
	if p.IsPile() {
		return b.eraseFromPile(p.Controller, p.Location, p.Sequence)
	}
	c, ok := b.FieldZones[p]
	if !ok {
		return nil, newErr(MissingCard, "field place %+v is empty", p)
	}
	b.clearField(p)
	return c, nil
}

// SetAt directly overwrites the card at p without inserting/erasing — no
// index shift, no overlay compaction. Used by SwapCards, which exchanges
// occupants of two already-occupied places without changing pile length
// or overlay stack shape.
func (b *Board) SetAt(p place.Place, c *card.Card) {
	if p.IsPile() {
		b.Piles[p.Controller][p.Location][p.Sequence] = c
		return
	}
	b.FieldZones[p] = c
}

// NewError constructs a *Error of the given Kind, exported for handler
// packages (internal/interpreter) that need to surface duel-level errors
// for conditions the board itself doesn't detect (e.g. an enum value
// outside the set the simulator is contractually limited to).
func NewError(k Kind, format string, args ...any) *Error {
	return newErr(k, format, args...)
}

// Validate checks pile density (no gaps in a pile's index range),
// overlay density (no gaps in an overlay stack), and that the
// disabled-zones keyset hasn't drifted from its fixed construction-time
// domain. It does not check card uniqueness across containers, nor the
// cursor positions of card cells (which the handlers advance cell by cell,
// so they need not be equal within one card).
func (b *Board) Validate() error {
	for controller := range b.Piles {
		for loc, pile := range b.Piles[controller] {
			for i, c := range pile {
				if c == nil {
					return newErr(MalformedMessage, "pile gap at controller=%d loc=%v idx=%d", controller, loc, i)
				}
			}
		}
	}
	if err := b.validateOverlayDensity(); err != nil {
		return err
	}
	if len(b.DisabledZones) != len(b.disabledKeyset) {
		return newErr(MalformedMessage, "disabled_zones keyset size drifted: got %d want %d", len(b.DisabledZones), len(b.disabledKeyset))
	}
	for p := range b.DisabledZones {
		if !b.disabledKeyset[p] {
			return newErr(MalformedMessage, "disabled_zones has unexpected key %+v", p)
		}
	}
	return nil
}

func (b *Board) validateOverlayDensity() error {
	stacks := make(map[place.Place][]int32) // keyed by host place with OverlaySequence set to -1
	for p := range b.FieldZones {
		if !p.IsOverlay() {
			continue
		}
		host := p
		host.OverlaySequence = -1
		stacks[host] = append(stacks[host], p.OverlaySequence)
	}
	for host, seqs := range stacks {
		seen := make(map[int32]bool, len(seqs))
		for _, s := range seqs {
			seen[s] = true
		}
		for i := int32(0); i < int32(len(seqs)); i++ {
			if !seen[i] {
				return newErr(MalformedMessage, "overlay gap on host %+v at index %d", host, i)
			}
		}
	}
	return nil
}
