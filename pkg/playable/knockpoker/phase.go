package knockpoker

import (
	"encoding/json"
	"fmt"
)

// Phase is the lifecycle stage of a knock poker game
type Phase int

// Phases of a game, in lifecycle order
const (
	// PhaseNotStarted means cards have not been dealt yet
	PhaseNotStarted Phase = iota

	// PhaseAwaitingAction means no one is mid-turn
	PhaseAwaitingAction

	// PhaseAwaitingBurn means a specific player owes a burn
	PhaseAwaitingBurn

	// PhaseFinalRound means someone knocked and the remaining players get one more draw
	PhaseFinalRound

	// PhaseEnded means the final round finished and the game is awaiting settlement
	PhaseEnded
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseAwaitingAction:
		return "awaiting-action"
	case PhaseAwaitingBurn:
		return "awaiting-burn"
	case PhaseFinalRound:
		return "final-round"
	case PhaseEnded:
		return "ended"
	default:
		panic(fmt.Sprintf("unknown phase: %d", int(p)))
	}
}

// MarshalJSON encodes the phase as its string representation
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}
