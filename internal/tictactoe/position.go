package tictactoe

import "fmt"

const (
	// Size is the board's side length.
	Size = 3

	minCoord = 0
	maxCoord = Size - 1
)

// Position is a board coordinate. Row and Col are in [0, 2].
type Position struct {
	Row, Col int
}

// String returns "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Axis selects which cursor coordinate a move changes.
type Axis int

const (
	// Horizontal moves change the column.
	Horizontal Axis = iota
	// Vertical moves change the row.
	Vertical
)

// String returns a human-readable axis name.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Board is the 3x3 grid, indexed [row][col].
type Board [Size][Size]Cell

// At returns the cell at p.
func (b Board) At(p Position) Cell {
	return b[p.Row][p.Col]
}

// Occupied returns the number of marked cells.
func (b Board) Occupied() int {
	n := 0
	for row := range b {
		for col := range b[row] {
			if !b[row][col].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// winLines lists every line in scan order: rows, columns, main diagonal, anti-diagonal.
var winLines = [8][3]Position{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}
