package interpreter

import "github.com/hailam/duelrewind/internal/message"

// newTurnForward advances the turn-player cell and increments the plain
// turn counter. Turn itself carries no history (it only ever counts up),
// so turn number is not something backward stepping can recover on its
// own — newTurnBackward decrements it directly.
func newTurnForward(e *Engine, m *message.NewTurn, realtime bool) error {
	e.Board.TurnPlayer.AdvanceOrAppend(realtime, m.TurnPlayer)
	e.Board.Turn++
	return nil
}

// newTurnBackward retreats the turn-player cell and decrements the turn
// counter.
func newTurnBackward(e *Engine, m *message.NewTurn) error {
	e.Board.TurnPlayer.Retreat()
	e.Board.Turn--
	return nil
}

// newPhaseForward advances the phase cell to m.Phase.
func newPhaseForward(e *Engine, m *message.NewPhase, realtime bool) error {
	e.Board.Phase.AdvanceOrAppend(realtime, m.Phase)
	return nil
}

// newPhaseBackward retreats the phase cell.
func newPhaseBackward(e *Engine) error {
	e.Board.Phase.Retreat()
	return nil
}
