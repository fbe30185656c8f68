// Package place implements the Place coordinate: the
// four-field address that identifies where a single card lives, and the
// sole classification rule for routing a Place to a pile or a field slot.
package place

// Location is a bitmask of the zones a card can occupy. A Place's
// Location field may combine bits (e.g. MonsterZone for a normal monster
// zone slot, or Overlay|MonsterZone for an overlay stacked under a
// monster).
type Location uint32

const (
	MainDeck Location = 1 << iota
	Hand
	Graveyard
	Banished
	ExtraDeck
	MonsterZone
	SpellZone
	Overlay
	OnField
	FieldZone
	PendulumZone
)

// fieldBits is every bit that marks a Place as a field slot rather than a
// pile. This is the sole source of truth for container
// selection: IsPile is defined purely in terms of this mask.
const fieldBits = MonsterZone | SpellZone | Overlay | OnField | FieldZone | PendulumZone

// pileKinds enumerates the five locations get_pile accepts.
var pileKinds = map[Location]bool{
	MainDeck:  true,
	Hand:      true,
	Graveyard: true,
	Banished:  true,
	ExtraDeck: true,
}

// Place identifies a card's home: which controller owns the zone, which
// kind of zone, which slot/index within it, and — for overlay slots —
// which position in the overlay stack.
type Place struct {
	Controller      uint8
	Location        Location
	Sequence        uint32
	OverlaySequence int32 // negative: not an overlay slot.
}

// New constructs a non-overlay Place.
func New(controller uint8, loc Location, sequence uint32) Place {
	return Place{Controller: controller, Location: loc, Sequence: sequence, OverlaySequence: -1}
}

// NewOverlay constructs a Place addressing an overlay slot on a host field
// card; overlaySeq 0 is the bottom overlay.
func NewOverlay(controller uint8, loc Location, sequence uint32, overlaySeq int32) Place {
	return Place{Controller: controller, Location: loc | Overlay, Sequence: sequence, OverlaySequence: overlaySeq}
}

// IsOverlay reports whether p addresses an overlay slot.
func (p Place) IsOverlay() bool {
	return p.OverlaySequence >= 0
}

// IsPile reports whether p is a pile place: none of the field-only bits
// are set in Location. This is the sole classification rule; FieldZones,
// GetPile, and GetCard all defer to it.
func (p Place) IsPile() bool {
	return p.Location&fieldBits == 0
}

// Less gives field-slot maps a total, lexicographic order over
// (Controller, Location, Sequence, OverlaySequence).
func Less(a, b Place) bool {
	if a.Controller != b.Controller {
		return a.Controller < b.Controller
	}
	if a.Location != b.Location {
		return a.Location < b.Location
	}
	if a.Sequence != b.Sequence {
		return a.Sequence < b.Sequence
	}
	return a.OverlaySequence < b.OverlaySequence
}

// PileKind reports whether loc is one of the five recognized pile
// locations (used by get_pile to surface UnknownLocation).
func PileKind(loc Location) bool {
	return pileKinds[loc]
}
