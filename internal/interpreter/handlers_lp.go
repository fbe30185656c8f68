package interpreter

import "github.com/hailam/duelrewind/internal/message"

// lpChangeForward applies one life-point delta for m.Player. DAMAGE and
// PAY both subtract, clamped at 0; RECOVER adds; BECOME overwrites
// outright. Every kind still advances the temporal cell by exactly one
// recorded value, so retreating it undoes the change regardless of kind.
func lpChangeForward(e *Engine, m *message.LpChange, realtime bool) error {
	cell := e.Board.PlayerLP[m.Player]
	prev := cell.Get()
	var next uint32
	switch m.Kind {
	case message.LpDamage, message.LpPay:
		if m.Amount > prev {
			next = 0
		} else {
			next = prev - m.Amount
		}
	case message.LpRecover:
		next = prev + m.Amount
	case message.LpBecome:
		next = m.Amount
	}
	cell.AdvanceOrAppend(realtime, next)
	return nil
}

// lpChangeBackward retreats the life-point cell touched by
// lpChangeForward.
func lpChangeBackward(e *Engine, m *message.LpChange) error {
	e.Board.PlayerLP[m.Player].Retreat()
	return nil
}
