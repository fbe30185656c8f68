// Package message implements the wire-level message alphabet the
// interpreter consumes: the tagged union of critical and non-critical
// message kinds, and the small enumerations the simulator's message
// fields are drawn from.
package message

import "github.com/hailam/duelrewind/internal/place"

// Position is the face-up/down and attack/defense state of a card.
// FaceDown is the value FillPile seeds decks with.
type Position uint32

const (
	FaceDown Position = iota
	FaceUpAttack
	FaceUpDefense
	FaceDownAttack
	FaceDownDefense
)

// UpdateReason distinguishes the four UpdateCard variants.
type UpdateReason uint8

const (
	DeckTop UpdateReason = iota
	Move
	PosChange
	Set
)

// CounterChangeKind is ADD or REMOVE for a CounterChange message.
type CounterChangeKind uint8

const (
	CounterAdd CounterChangeKind = iota
	CounterRemove
)

// LpChangeKind is one of the four ways life points can move.
type LpChangeKind uint8

const (
	LpDamage LpChangeKind = iota
	LpPay
	LpRecover
	LpBecome
)

// CardInfo is the embedded (controller, location, sequence, overlay
// sequence, code, position) block most critical messages carry; Place()
// derives the board coordinate from it. IsOverlay is a separate flag
// rather than a sentinel on OverlaySequence, so a zero-valued CardInfo (as
// produced by an ordinary Go struct literal that never mentions overlays)
// addresses a plain, non-overlay slot rather than overlay index 0.
type CardInfo struct {
	Controller      uint8
	Location        place.Location
	Sequence        uint32
	IsOverlay       bool
	OverlaySequence int32
	Code            uint32
	Position        Position
}

// Place derives the Place this CardInfo addresses.
func (ci CardInfo) Place() place.Place {
	if ci.IsOverlay {
		return place.NewOverlay(ci.Controller, ci.Location&^place.Overlay, ci.Sequence, ci.OverlaySequence)
	}
	return place.New(ci.Controller, ci.Location, ci.Sequence)
}

// Counter identifies one typed counter instance and its current count.
type Counter struct {
	Type  uint32
	Count uint32
}

// --- Critical message kinds ---

type UpdateCard struct {
	Reason   UpdateReason
	Previous CardInfo
	Current  CardInfo
}

type AddCard struct {
	Card CardInfo
}

type RemoveCard struct {
	Card CardInfo
}

type Draw struct {
	Player uint8
	Cards  []CardInfo // only Code is meaningful per entry.
}

type SwapCards struct {
	Card1 CardInfo
	Card2 CardInfo
}

type ShuffleLocation struct {
	Player   uint8
	Location place.Location
	Shuffled []CardInfo // Code per resulting pile index; omit for unknown.
}

type ShuffleSetCards struct {
	Previous []CardInfo
	Current  []CardInfo // empty slice signals "unknown, keep previous position".
}

type CounterChange struct {
	Place   CardInfo
	Counter Counter
	Kind    CounterChangeKind
}

type DisableZones struct {
	Places []place.Place
}

type LpChange struct {
	Player uint8
	Kind   LpChangeKind
	Amount uint32
}

type NewTurn struct {
	TurnPlayer uint32
}

type NewPhase struct {
	Phase uint32
}

// NonCritical carries a diagnostic label for any message kind that never
// mutates state (hints, win, chain visuals, ...).
type NonCritical struct {
	Kind string
}

// Any is the tagged union over every message kind the engine accepts.
// Exactly one field is non-nil.
type Any struct {
	UpdateCard      *UpdateCard
	AddCard         *AddCard
	RemoveCard      *RemoveCard
	Draw            *Draw
	SwapCards       *SwapCards
	ShuffleLocation *ShuffleLocation
	ShuffleSetCards *ShuffleSetCards
	CounterChange   *CounterChange
	DisableZones    *DisableZones
	LpChange        *LpChange
	NewTurn         *NewTurn
	NewPhase        *NewPhase
	NonCritical     *NonCritical
}

// IsCritical reports whether this message mutates board state at all. Non
// critical variants (and a zero-valued Any with no variant set) never do.
func (a Any) IsCritical() bool {
	return a.NonCritical == nil &&
		(a.UpdateCard != nil || a.AddCard != nil || a.RemoveCard != nil ||
			a.Draw != nil || a.SwapCards != nil || a.ShuffleLocation != nil ||
			a.ShuffleSetCards != nil || a.CounterChange != nil ||
			a.DisableZones != nil || a.LpChange != nil ||
			a.NewTurn != nil || a.NewPhase != nil)
}

// Kind returns a short label for diagnostics/metrics, independent of
// whether the message is critical.
func (a Any) Kind() string {
	switch {
	case a.UpdateCard != nil:
		return "UpdateCard"
	case a.AddCard != nil:
		return "AddCard"
	case a.RemoveCard != nil:
		return "RemoveCard"
	case a.Draw != nil:
		return "Draw"
	case a.SwapCards != nil:
		return "SwapCards"
	case a.ShuffleLocation != nil:
		return "ShuffleLocation"
	case a.ShuffleSetCards != nil:
		return "ShuffleSetCards"
	case a.CounterChange != nil:
		return "CounterChange"
	case a.DisableZones != nil:
		return "DisableZones"
	case a.LpChange != nil:
		return "LpChange"
	case a.NewTurn != nil:
		return "NewTurn"
	case a.NewPhase != nil:
		return "NewPhase"
	case a.NonCritical != nil:
		return "NonCritical:" + a.NonCritical.Kind
	default:
		return "Empty"
	}
}
