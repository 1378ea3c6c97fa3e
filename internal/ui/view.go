package ui

import (
	"fmt"

	"github.com/samdwyer/tictactoe/internal/tictactoe"
)

// Title is drawn in the top border of the board frame.
const Title = "Tic Tac Toe"

// StatusText describes the game for the line above the board.
func StatusText(s *tictactoe.State) string {
	if p, ok := s.Outcome().Winner(); ok {
		return fmt.Sprintf("The winner is player %s", p)
	}
	if s.RemainingEmpty() == 0 {
		return "It's a draw"
	}
	return fmt.Sprintf("Player's turn: %s", s.ActivePlayer())
}

// HelpLines lists the key bindings that apply right now.
func HelpLines(s *tictactoe.State) []string {
	if s.IsGameEnd() {
		return []string{
			"Play again: r",
			"Quit: q",
		}
	}
	return []string{
		"Movement: ← ↓ ↑ →",
		"Claim a box: ENTER / SPACE",
		"Quit: q",
	}
}
