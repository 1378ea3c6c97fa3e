package tictactoe

type outcomeKind uint8

const (
	kindInProgress outcomeKind = iota
	kindWon
	kindDraw
)

// Outcome classifies a game as in progress, won by a player, or drawn.
// The zero value is in progress.
type Outcome struct {
	kind   outcomeKind
	winner Player
}

// InProgress returns the outcome of a game still being played.
func InProgress() Outcome {
	return Outcome{}
}

// Won returns the outcome of a game won by p.
func Won(p Player) Outcome {
	return Outcome{kind: kindWon, winner: p}
}

// Draw returns the outcome of a full board with no winning line.
func Draw() Outcome {
	return Outcome{kind: kindDraw}
}

// IsInProgress reports whether the game is still being played.
func (o Outcome) IsInProgress() bool {
	return o.kind == kindInProgress
}

// IsDraw reports whether the game ended without a winner.
func (o Outcome) IsDraw() bool {
	return o.kind == kindDraw
}

// Winner returns the winning player, or false if nobody has won.
func (o Outcome) Winner() (Player, bool) {
	if o.kind != kindWon {
		return 0, false
	}
	return o.winner, true
}

// String returns "in_progress", "won_x", "won_o" or "draw".
func (o Outcome) String() string {
	switch o.kind {
	case kindInProgress:
		return "in_progress"
	case kindWon:
		if o.winner == PlayerX {
			return "won_x"
		}
		return "won_o"
	case kindDraw:
		return "draw"
	default:
		return "unknown"
	}
}
