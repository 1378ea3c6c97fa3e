package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/tictactoe/internal/gamedata"
	"github.com/samdwyer/tictactoe/internal/tictactoe"
)

type fakeCell struct {
	r     rune
	style tcell.Style
}

// fakeCanvas records drawn cells in memory, dropping writes outside its bounds.
type fakeCanvas struct {
	w, h  int
	cells [][]fakeCell
	shows int
}

func newFakeCanvas(w, h int) *fakeCanvas {
	c := &fakeCanvas{w: w, h: h}
	c.Clear()
	return c
}

func (c *fakeCanvas) SetContent(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = fakeCell{r: r, style: style}
}

func (c *fakeCanvas) Size() (int, int) { return c.w, c.h }

func (c *fakeCanvas) Clear() {
	c.cells = make([][]fakeCell, c.h)
	for y := range c.cells {
		c.cells[y] = make([]fakeCell, c.w)
		for x := range c.cells[y] {
			c.cells[y][x] = fakeCell{r: ' ', style: tcell.StyleDefault}
		}
	}
}

func (c *fakeCanvas) Show() { c.shows++ }

func (c *fakeCanvas) row(y int) string {
	var b strings.Builder
	for _, cell := range c.cells[y] {
		b.WriteRune(cell.r)
	}
	return b.String()
}

func (c *fakeCanvas) text() string {
	rows := make([]string, c.h)
	for y := range rows {
		rows[y] = c.row(y)
	}
	return strings.Join(rows, "\n")
}

func foreground(s tcell.Style) tcell.Color {
	fg, _, _ := s.Decompose()
	return fg
}

func playTopRow(s *tictactoe.State) {
	// X: (0,0) (0,1) (0,2); O: (1,0) (1,1)
	s.SelectCell()
	s.MoveCursor(tictactoe.Vertical, 1)
	s.SelectCell()
	s.MoveCursor(tictactoe.Vertical, -1)
	s.MoveCursor(tictactoe.Horizontal, 1)
	s.SelectCell()
	s.MoveCursor(tictactoe.Vertical, 1)
	s.SelectCell()
	s.MoveCursor(tictactoe.Vertical, -1)
	s.MoveCursor(tictactoe.Horizontal, 1)
	s.SelectCell()
}

func TestStatusText(t *testing.T) {
	s := tictactoe.New()
	assert.Equal(t, "Player's turn: X", StatusText(s))

	s.SelectCell()
	assert.Equal(t, "Player's turn: O", StatusText(s))

	won := tictactoe.New()
	playTopRow(won)
	assert.Equal(t, "The winner is player X", StatusText(won))

	draw := tictactoe.New()
	// X O X / X O O / O X X
	for _, p := range []tictactoe.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 0}, {Row: 2, Col: 2}} {
		for draw.Cursor().Row != p.Row {
			d := 1
			if draw.Cursor().Row > p.Row {
				d = -1
			}
			draw.MoveCursor(tictactoe.Vertical, d)
		}
		for draw.Cursor().Col != p.Col {
			d := 1
			if draw.Cursor().Col > p.Col {
				d = -1
			}
			draw.MoveCursor(tictactoe.Horizontal, d)
		}
		require.True(t, draw.SelectCell())
	}
	assert.Equal(t, "It's a draw", StatusText(draw))
	assert.Equal(t, []string{"Play again: r", "Quit: q"}, HelpLines(draw))
}

func TestHelpLines(t *testing.T) {
	s := tictactoe.New()
	assert.Equal(t, []string{"Movement: ← ↓ ↑ →", "Claim a box: ENTER / SPACE", "Quit: q"}, HelpLines(s))

	playTopRow(s)
	assert.Equal(t, []string{"Play again: r", "Quit: q"}, HelpLines(s))
}

func TestRenderFreshBoard(t *testing.T) {
	theme := gamedata.MustLoadTheme()
	canvas := newFakeCanvas(80, 40)
	r := NewRenderer(canvas, theme)
	s := tictactoe.New()

	r.Render(s)

	out := canvas.text()
	assert.Contains(t, out, "Player's turn: X")
	assert.Contains(t, out, Title)
	assert.Contains(t, out, "Claim a box: ENTER / SPACE")
	assert.Equal(t, 1, canvas.shows)

	l := r.layoutFor(80, 40, 3)
	require.Equal(t, gamedata.GlyphsLarge, l.glyphs.Name)

	x, y := l.cellOrigin(tictactoe.Position{Row: 0, Col: 0})
	assert.Equal(t, '╭', canvas.cells[y][x].r)
	assert.Equal(t, theme.Color(gamedata.ColorCursor), foreground(canvas.cells[y][x].style))

	x, y = l.cellOrigin(tictactoe.Position{Row: 1, Col: 2})
	assert.Equal(t, '╯', canvas.cells[y+l.cellH-1][x+l.cellW-1].r)
	assert.Equal(t, theme.Color(gamedata.ColorCell), foreground(canvas.cells[y][x].style))

	assert.Equal(t, '┏', canvas.cells[l.frameY][l.frameX].r)
}

func TestRenderMarksAndWinner(t *testing.T) {
	theme := gamedata.MustLoadTheme()
	canvas := newFakeCanvas(80, 40)
	r := NewRenderer(canvas, theme)
	s := tictactoe.New()
	playTopRow(s)
	before := *s

	r.Render(s)

	assert.Equal(t, before, *s, "render must not mutate the game")
	out := canvas.text()
	assert.Contains(t, out, "The winner is player X")
	assert.Contains(t, out, "Play again: r")
	assert.Contains(t, out, `\ V /`)
	assert.Contains(t, out, `| |__| |`)

	l := r.layoutFor(80, 40, 2)
	status := canvas.cells[l.statusY][(80-len("The winner is player X"))/2]
	_, _, attrs := status.style.Decompose()
	assert.NotZero(t, attrs&tcell.AttrBlink, "status blinks once the game is over")
}

func TestRenderSmallTerminalUsesCompactGlyphs(t *testing.T) {
	theme := gamedata.MustLoadTheme()
	canvas := newFakeCanvas(80, 24)
	r := NewRenderer(canvas, theme)
	s := tictactoe.New()
	s.SelectCell()

	r.Render(s)

	l := r.layoutFor(80, 24, 3)
	require.Equal(t, gamedata.GlyphsSmall, l.glyphs.Name)

	x, y := l.cellOrigin(tictactoe.Position{Row: 0, Col: 0})
	mark := canvas.cells[y+1][x+2]
	assert.Equal(t, 'X', mark.r)
	assert.Equal(t, theme.Color(gamedata.ColorX), foreground(mark.style))
	assert.Contains(t, canvas.text(), "Player's turn: O")
}

func TestRenderTinyTerminalDoesNotPanic(t *testing.T) {
	canvas := newFakeCanvas(5, 3)
	r := NewRenderer(canvas, gamedata.MustLoadTheme())

	assert.NotPanics(t, func() { r.Render(tictactoe.New()) })
}

func TestWriteSummary(t *testing.T) {
	theme := gamedata.MustLoadTheme()

	tests := []struct {
		name     string
		sum      tictactoe.Tally
		expected string
	}{
		{"no games", tictactoe.Tally{}, "Thanks for playing!\n"},
		{"one game", tictactoe.Tally{Games: 1, XWins: 1}, "Thanks for playing! 1 game: X won 1, O won 0, 0 draws\n"},
		{"several", tictactoe.Tally{Games: 4, XWins: 1, OWins: 2, Draws: 1}, "Thanks for playing! 4 games: X won 1, O won 2, 1 draw\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))

			require.NoError(t, WriteSummary(out, theme, tt.sum))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestScreenWrapsSimulation(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	require.NoError(t, err)
	sim.SetSize(80, 24)

	w, h := screen.Size()
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	ev, ok := screen.PollEvent().(*tcell.EventKey)
	require.True(t, ok)
	assert.Equal(t, 'q', ev.Rune())

	assert.NotPanics(t, func() {
		screen.Close()
		screen.Close()
	})
	assert.Nil(t, screen.PollEvent())
}
