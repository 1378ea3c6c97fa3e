package tictactoe

import "fmt"

// State is a single game: board, cursor, player to move and outcome.
// It is owned by the run loop; all mutation goes through its methods.
type State struct {
	board     Board
	cursor    Position
	active    Player
	remaining int
	outcome   Outcome
}

// New returns a fresh game: empty board, cursor at (0,0), X to move.
func New() *State {
	return &State{
		cursor:    Position{Row: 0, Col: 0},
		active:    PlayerX,
		remaining: Size * Size,
		outcome:   InProgress(),
	}
}

// Board returns a copy of the grid.
func (s *State) Board() Board {
	return s.board
}

// Cell returns the cell at p.
func (s *State) Cell(p Position) Cell {
	return s.board.At(p)
}

// Cursor returns the highlighted position.
func (s *State) Cursor() Position {
	return s.cursor
}

// ActivePlayer returns the player whose mark the next placement uses.
func (s *State) ActivePlayer() Player {
	return s.active
}

// RemainingEmpty returns the number of empty cells.
func (s *State) RemainingEmpty() int {
	return s.remaining
}

// Outcome returns the recorded outcome. A full board without a winner is still
// reported as in progress here; see Result.
func (s *State) Outcome() Outcome {
	return s.outcome
}

// Result returns the outcome with the draw derived from a full board.
func (s *State) Result() Outcome {
	if s.outcome.IsInProgress() && s.remaining == 0 {
		return Draw()
	}
	return s.outcome
}

// IsGameEnd reports whether someone has won or the board is full.
func (s *State) IsGameEnd() bool {
	_, won := s.outcome.Winner()
	return won || s.remaining == 0
}

// MoveCursor shifts the cursor one step along axis. delta must be -1 or +1;
// anything else panics. Moves past the board edge and moves after the game
// ended are ignored. It reports whether the cursor moved.
func (s *State) MoveCursor(axis Axis, delta int) bool {
	if delta != -1 && delta != 1 {
		panic(fmt.Sprintf("tictactoe: cursor delta must be -1 or +1, got %d", delta))
	}

	var coord *int
	switch axis {
	case Horizontal:
		coord = &s.cursor.Col
	case Vertical:
		coord = &s.cursor.Row
	default:
		panic(fmt.Sprintf("tictactoe: unknown axis %d", axis))
	}

	if s.IsGameEnd() {
		return false
	}

	next := *coord + delta
	if next < minCoord || next > maxCoord {
		return false
	}
	*coord = next
	return true
}

// SelectCell marks the cell under the cursor for the active player. Occupied
// cells and finished games are left untouched. It reports whether a mark was
// placed.
func (s *State) SelectCell() bool {
	if s.IsGameEnd() {
		return false
	}

	row, col := s.cursor.Row, s.cursor.Col
	if !s.board[row][col].IsEmpty() {
		return false
	}

	s.board[row][col] = MarkedBy(s.active)
	s.remaining--
	s.evaluateOutcome()
	return true
}

// Reset starts a new game if the current one has ended. It reports whether the
// state was replaced.
func (s *State) Reset() bool {
	if !s.IsGameEnd() {
		return false
	}
	*s = *New()
	return true
}

// evaluateOutcome runs after every placement. The last matching line in scan
// order decides the winner. Without a win the turn passes, including on the
// placement that fills the board.
func (s *State) evaluateOutcome() {
	won := false
	for _, line := range winLines {
		if p, ok := s.lineOwner(line); ok {
			s.outcome = Won(p)
			won = true
		}
	}

	if !won {
		s.active = s.active.Other()
	}
}

// lineOwner returns the player holding all three cells of line.
func (s *State) lineOwner(line [3]Position) (Player, bool) {
	first, ok := s.board.At(line[0]).Player()
	if !ok {
		return 0, false
	}
	for _, p := range line[1:] {
		if s.board.At(p) != MarkedBy(first) {
			return 0, false
		}
	}
	return first, true
}
