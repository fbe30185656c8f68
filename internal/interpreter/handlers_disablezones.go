package interpreter

import (
	"github.com/hailam/duelrewind/internal/message"
	"github.com/hailam/duelrewind/internal/place"
)

// disableZonesForward records a new disabled-zone snapshot: every cell in
// the board's fixed disabled-zones domain is advanced once to true if its
// place is named in m.Places, false otherwise. One AdvanceOrAppend per
// cell per message, matching every other handler in this package.
func disableZonesForward(e *Engine, m *message.DisableZones, realtime bool) error {
	inSet := make(map[place.Place]bool, len(m.Places))
	for _, p := range m.Places {
		inSet[p] = true
	}
	for p, cell := range e.Board.DisabledZones {
		cell.AdvanceOrAppend(realtime, inSet[p])
	}
	return nil
}

// disableZonesBackward retreats every disabled-zone cell by one step.
func disableZonesBackward(e *Engine) error {
	for _, cell := range e.Board.DisabledZones {
		cell.Retreat()
	}
	return nil
}
