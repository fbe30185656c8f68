// Package interpreter implements the message log, cursor, and per-message
// handler table that together drive a duel Board forward and backward
// through a recorded event log.
package interpreter

import (
	"github.com/hailam/duelrewind/internal/duel"
	"github.com/hailam/duelrewind/internal/message"
	"go.uber.org/zap"
)

// recoverCursorBounds converts a temporal-cell bounds panic raised deep in
// a handler into a duel CursorBounds error, so one malformed replay step
// fails the call instead of crashing the process.
func recoverCursorBounds(err *error) {
	if r := recover(); r != nil {
		*err = duel.NewError(duel.CursorBounds, "%v", r)
	}
}

// Engine owns the message log and the cursor that walks it, and drives
// the handler table against a *duel.Board. It is not safe for concurrent
// use; embedders that need multi-threaded read access should wrap it in
// Locked (see locked.go).
type Engine struct {
	Board *duel.Board

	msgs           []message.Any
	state          int
	processedState int
	advancing      bool

	logger *zap.Logger
}

// New constructs an Engine over an already-seeded board. logger may be
// nil, in which case diagnostics are simply dropped.
func New(b *duel.Board, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{Board: b, logger: logger}
}

// Append enqueues msg at the tail of the log without moving the cursor.
func (e *Engine) Append(m message.Any) {
	e.msgs = append(e.msgs, m)
}

// Messages returns the full recorded log, for checkpointing. The returned
// slice is owned by the engine and must not be mutated by the caller.
func (e *Engine) Messages() []message.Any {
	return e.msgs
}

// TotalStates, ProcessedStates, CurrentState, IsRealtime are the trivial
// accessors exposed to callers (e.g. the CLI harness's "show" command).
func (e *Engine) TotalStates() int      { return len(e.msgs) }
func (e *Engine) ProcessedStates() int  { return e.processedState }
func (e *Engine) CurrentState() int     { return e.state }
func (e *Engine) IsRealtime() bool      { return e.state == e.processedState }
func (e *Engine) Advancing() bool       { return e.advancing }

// Forward interprets the message at the current state and advances the
// cursor onto it. It is a no-op if the log is empty or the cursor is
// already at the tail.
// realtime is computed as (state == processedState) at the moment Forward
// is called; if realtime, processedState advances with it. On handler
// error the board is left untouched and neither state nor processedState
// move, so the engine can retry (e.g. from a corrected message) rather
// than wedging at a half-advanced cursor.
func (e *Engine) Forward() (err error) {
	if len(e.msgs) == 0 || e.state > len(e.msgs)-1 {
		return nil
	}
	realtime := e.state == e.processedState
	e.advancing = true
	msg := e.msgs[e.state]
	defer recoverCursorBounds(&err)

	if err = e.dispatchForward(msg, realtime); err != nil {
		e.logger.Warn("forward handler failed",
			zap.Int("state", e.state), zap.String("kind", msg.Kind()), zap.Error(err))
		return err
	}
	if realtime {
		e.processedState++
	}
	e.state++
	return nil
}

// Backward regresses the cursor and interprets the message it now points
// at in reverse. No-op if already at the log head.
func (e *Engine) Backward() (err error) {
	if e.state == 0 {
		return nil
	}
	e.advancing = false
	prevState := e.state
	e.state--
	msg := e.msgs[e.state]
	defer recoverCursorBounds(&err)

	if err = e.dispatchBackward(msg); err != nil {
		e.state = prevState
		e.logger.Warn("backward handler failed",
			zap.Int("state", e.state), zap.String("kind", msg.Kind()), zap.Error(err))
		return err
	}
	return nil
}

func (e *Engine) dispatchForward(m message.Any, realtime bool) error {
	switch {
	case m.UpdateCard != nil:
		return updateCardForward(e, m.UpdateCard, realtime)
	case m.AddCard != nil:
		return addCardForward(e, m.AddCard, realtime)
	case m.RemoveCard != nil:
		return removeCardForward(e, m.RemoveCard)
	case m.Draw != nil:
		return drawForward(e, m.Draw, realtime)
	case m.SwapCards != nil:
		return swapCardsApply(e, m.SwapCards)
	case m.ShuffleLocation != nil:
		return shuffleLocationForward(e, m.ShuffleLocation, realtime)
	case m.ShuffleSetCards != nil:
		return shuffleSetCardsForward(e, m.ShuffleSetCards, realtime)
	case m.CounterChange != nil:
		return counterChangeForward(e, m.CounterChange, realtime)
	case m.DisableZones != nil:
		return disableZonesForward(e, m.DisableZones, realtime)
	case m.LpChange != nil:
		return lpChangeForward(e, m.LpChange, realtime)
	case m.NewTurn != nil:
		return newTurnForward(e, m.NewTurn, realtime)
	case m.NewPhase != nil:
		return newPhaseForward(e, m.NewPhase, realtime)
	default:
		e.logger.Debug("non-critical message observed", zap.String("kind", m.Kind()))
		return nil
	}
}

func (e *Engine) dispatchBackward(m message.Any) error {
	switch {
	case m.UpdateCard != nil:
		return updateCardBackward(e, m.UpdateCard)
	case m.AddCard != nil:
		return addCardBackward(e, m.AddCard)
	case m.RemoveCard != nil:
		return removeCardBackward(e, m.RemoveCard)
	case m.Draw != nil:
		return drawBackward(e, m.Draw)
	case m.SwapCards != nil:
		return swapCardsApply(e, m.SwapCards)
	case m.ShuffleLocation != nil:
		return shuffleLocationBackward(e, m.ShuffleLocation)
	case m.ShuffleSetCards != nil:
		return shuffleSetCardsBackward(e, m.ShuffleSetCards)
	case m.CounterChange != nil:
		return counterChangeBackward(e, m.CounterChange)
	case m.DisableZones != nil:
		return disableZonesBackward(e)
	case m.LpChange != nil:
		return lpChangeBackward(e, m.LpChange)
	case m.NewTurn != nil:
		return newTurnBackward(e, m.NewTurn)
	case m.NewPhase != nil:
		return newPhaseBackward(e)
	default:
		return nil
	}
}
