package ui

import (
	"fmt"

	"github.com/muesli/termenv"

	"github.com/samdwyer/tictactoe/internal/gamedata"
	"github.com/samdwyer/tictactoe/internal/tictactoe"
)

// WriteSummary prints the session tally. It is meant for stdout after the
// screen has been closed.
func WriteSummary(out *termenv.Output, theme *gamedata.Theme, sum tictactoe.Tally) error {
	if sum.Games == 0 {
		_, err := fmt.Fprintln(out, "Thanks for playing!")
		return err
	}

	x := out.String("X").Foreground(out.Color(theme.Colors[gamedata.ColorX])).Bold()
	o := out.String("O").Foreground(out.Color(theme.Colors[gamedata.ColorO])).Bold()

	_, err := fmt.Fprintf(out, "Thanks for playing! %s: %s won %d, %s won %d, %s\n",
		plural(sum.Games, "game", "games"),
		x, sum.XWins,
		o, sum.OWins,
		plural(sum.Draws, "draw", "draws"),
	)
	return err
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
