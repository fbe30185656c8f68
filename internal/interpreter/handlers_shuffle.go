package interpreter

import (
	"github.com/hailam/duelrewind/internal/duel"
	"github.com/hailam/duelrewind/internal/message"
)

// shuffleLocationForward appends, for each element of the pile at
// (m.Player, m.Location), the revealed code at the matching index of
// m.Shuffled, or 0 for any index the message leaves silent (or when the
// whole list is unobservable). Card identity and position at each slot
// are untouched; only the Code cell's recorded value changes.
func shuffleLocationForward(e *Engine, m *message.ShuffleLocation, realtime bool) error {
	pile, err := e.Board.GetPile(m.Player, m.Location)
	if err != nil {
		return err
	}
	for i, c := range pile {
		var code uint32
		if i < len(m.Shuffled) {
			code = m.Shuffled[i].Code
		}
		c.Code.AdvanceOrAppend(realtime, code)
	}
	return nil
}

// shuffleLocationBackward retreats the Code cell shuffleLocationForward
// advanced for every element of the pile.
func shuffleLocationBackward(e *Engine, m *message.ShuffleLocation) error {
	pile, err := e.Board.GetPile(m.Player, m.Location)
	if err != nil {
		return err
	}
	for _, c := range pile {
		c.Code.Retreat()
	}
	return nil
}

// shuffleSetCardsForward locates each entry by field_zones[previous[i].place]
// (this message exists for field-zone rearrangement, e.g. pendulum zones,
// not pile reordering) and appends code/position from current[i] if
// present, else code=0 and the unchanged previous[i].position.
func shuffleSetCardsForward(e *Engine, m *message.ShuffleSetCards, realtime bool) error {
	if len(m.Current) != 0 && len(m.Current) != len(m.Previous) {
		return duel.NewError(duel.MalformedMessage,
			"ShuffleSetCards: current has %d entries, previous has %d", len(m.Current), len(m.Previous))
	}
	for i, prev := range m.Previous {
		c, err := e.Board.GetCard(prev.Place())
		if err != nil {
			return err
		}
		if len(m.Current) != 0 {
			cur := m.Current[i]
			c.Code.AdvanceOrAppend(realtime, cur.Code)
			c.Position.AdvanceOrAppend(realtime, uint32(cur.Position))
		} else {
			c.Code.AdvanceOrAppend(realtime, 0)
			c.Position.AdvanceOrAppend(realtime, uint32(prev.Position))
		}
	}
	return nil
}

// shuffleSetCardsBackward retreats the code/position cells
// shuffleSetCardsForward advanced, per field_zones[previous[i].place].
func shuffleSetCardsBackward(e *Engine, m *message.ShuffleSetCards) error {
	for _, prev := range m.Previous {
		c, err := e.Board.GetCard(prev.Place())
		if err != nil {
			return err
		}
		c.Code.Retreat()
		c.Position.Retreat()
	}
	return nil
}
