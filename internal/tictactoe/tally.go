package tictactoe

// Tally counts finished games. It lives only as long as the process.
type Tally struct {
	Games int
	XWins int
	OWins int
	Draws int
}

// Record adds a finished game's result. In-progress results are ignored.
func (t *Tally) Record(result Outcome) {
	if result.IsInProgress() {
		return
	}

	t.Games++
	if result.IsDraw() {
		t.Draws++
		return
	}
	if p, _ := result.Winner(); p == PlayerX {
		t.XWins++
	} else {
		t.OWins++
	}
}
