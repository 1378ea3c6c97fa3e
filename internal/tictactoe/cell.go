// Package tictactoe holds the game rules: board, cursor, turns and outcome.
package tictactoe

// Player identifies one of the two sides.
type Player uint8

const (
	// PlayerX always moves first in a fresh game.
	PlayerX Player = iota + 1
	// PlayerO moves second.
	PlayerO
)

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// String returns the player's mark.
func (p Player) String() string {
	switch p {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "?"
	}
}

// Cell is one square of the board. The zero value is an empty cell.
type Cell struct {
	mark Player
}

// Empty is the unmarked cell.
var Empty = Cell{}

// MarkedBy returns a cell carrying p's mark.
func MarkedBy(p Player) Cell {
	return Cell{mark: p}
}

// IsEmpty reports whether no player has marked the cell.
func (c Cell) IsEmpty() bool {
	return c.mark == 0
}

// Player returns the mark's owner, or false for an empty cell.
func (c Cell) Player() (Player, bool) {
	return c.mark, c.mark != 0
}

// String returns "X", "O" or " ".
func (c Cell) String() string {
	if c.IsEmpty() {
		return " "
	}
	return c.mark.String()
}
