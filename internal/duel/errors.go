package duel

import "fmt"

// Kind identifies one of the programming/protocol error classes this
// package can raise. All of them are fatal to the session: the engine validates
// at the handler boundary and fails fast, leaving the board untouched; it
// never retries.
type Kind int

const (
	// UnknownLocation: pile access with a non-pile location tag.
	UnknownLocation Kind = iota
	// MissingCard: lookup at a place that currently holds no card.
	MissingCard
	// IllegalMove: MoveSingle(from, to) with from == to.
	IllegalMove
	// MalformedMessage: message references coordinates outside the board's
	// recognized domain, or
	// a reason/type value outside the enumerated set.
	MalformedMessage
	// CursorBounds: temporal-cell retreat past sentinel, or advance past
	// tail without append.
	CursorBounds
)

func (k Kind) String() string {
	switch k {
	case UnknownLocation:
		return "UnknownLocation"
	case MissingCard:
		return "MissingCard"
	case IllegalMove:
		return "IllegalMove"
	case MalformedMessage:
		return "MalformedMessage"
	case CursorBounds:
		return "CursorBounds"
	default:
		return "Unknown"
	}
}

// Error pairs one of the Kind values above with a human-readable detail
// formatted by fmt.Sprintf, rather than a custom error package. Callers
// distinguish the five classes by extracting the *Error with errors.As and
// reading its Kind, rather than by string matching; there are no sentinel
// values for errors.Is to compare against.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("duel: %s: %s", e.Kind, e.Msg)
}

// newErr builds an *Error with a formatted message.
func newErr(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}
