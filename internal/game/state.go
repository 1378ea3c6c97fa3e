// Package game provides the main game loop and session bookkeeping.
package game

import "github.com/samdwyer/tictactoe/internal/tictactoe"

// Phase is the coarse state of the current game as seen by the run loop.
type Phase int

const (
	// PhasePlaying means moves are still accepted.
	PhasePlaying Phase = iota
	// PhaseWon means a player completed a line.
	PhaseWon
	// PhaseDraw means the board filled up without a line.
	PhaseDraw
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// phaseOf classifies s.
func phaseOf(s *tictactoe.State) Phase {
	result := s.Result()
	switch {
	case result.IsDraw():
		return PhaseDraw
	case result.IsInProgress():
		return PhasePlaying
	default:
		return PhaseWon
	}
}
