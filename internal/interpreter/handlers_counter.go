package interpreter

import "github.com/hailam/duelrewind/internal/message"

// counterChangeForward applies an ADD or REMOVE to the named counter type
// on the card at m.Place. Both kinds append a new recorded value going
// forward: ADD appends prev+count, REMOVE appends prev-count (clamped at
// 0, counters never go negative). The corresponding backward step always
// retreats regardless of which kind produced the value being undone.
func counterChangeForward(e *Engine, m *message.CounterChange, realtime bool) error {
	c, err := e.Board.GetCard(m.Place.Place())
	if err != nil {
		return err
	}
	cell := c.CounterCell(m.Counter.Type)
	prev := cell.Get()
	var next uint32
	switch m.Kind {
	case message.CounterAdd:
		next = prev + m.Counter.Count
	case message.CounterRemove:
		if m.Counter.Count > prev {
			next = 0
		} else {
			next = prev - m.Counter.Count
		}
	}
	cell.AdvanceOrAppend(realtime, next)
	return nil
}

// counterChangeBackward retreats the counter cell touched by
// counterChangeForward, recovering whatever value preceded it — ADD and
// REMOVE are symmetric in reverse, so the kind doesn't matter here.
func counterChangeBackward(e *Engine, m *message.CounterChange) error {
	c, err := e.Board.GetCard(m.Place.Place())
	if err != nil {
		return err
	}
	c.CounterCell(m.Counter.Type).Retreat()
	return nil
}
