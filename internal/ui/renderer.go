package ui

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tictactoe/internal/gamedata"
	"github.com/samdwyer/tictactoe/internal/tictactoe"
)

// maxHelpLines is the longest help block HelpLines returns.
const maxHelpLines = 3

type boxRunes struct {
	topLeft, topRight, bottomLeft, bottomRight rune
	horizontal, vertical                       rune
}

var (
	thickBox   = boxRunes{'┏', '┓', '┗', '┛', '━', '┃'}
	roundedBox = boxRunes{'╭', '╮', '╰', '╯', '─', '│'}
)

// layout holds the screen coordinates of one frame.
type layout struct {
	glyphs         *gamedata.GlyphSet
	cellW, cellH   int
	frameX, frameY int
	frameW, frameH int
	statusY, helpY int
}

// cellOrigin returns the top-left corner of the box for the given board cell.
func (l layout) cellOrigin(p tictactoe.Position) (int, int) {
	return l.frameX + 1 + p.Col*l.cellW, l.frameY + 1 + p.Row*l.cellH
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	canvas Canvas
	theme  *gamedata.Theme
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas, theme *gamedata.Theme) *Renderer {
	return &Renderer{canvas: canvas, theme: theme}
}

// Render draws the board, cursor, status and help text. It only reads s.
func (r *Renderer) Render(s *tictactoe.State) {
	r.canvas.Clear()

	w, h := r.canvas.Size()
	help := HelpLines(s)
	l := r.layoutFor(w, h, len(help))

	// Status line
	statusStyle := tcell.StyleDefault.Foreground(r.theme.Color(gamedata.ColorStatus))
	if s.IsGameEnd() {
		statusStyle = statusStyle.Blink(true)
	} else {
		statusStyle = statusStyle.Bold(true)
	}
	r.drawCentered(w, l.statusY, StatusText(s), statusStyle)

	// Outer frame
	frameStyle := tcell.StyleDefault.Foreground(r.theme.Color(gamedata.ColorFrame))
	r.drawBox(l.frameX, l.frameY, l.frameW, l.frameH, thickBox, frameStyle)
	title := " " + Title + " "
	r.drawText(l.frameX+(l.frameW-utf8.RuneCountInString(title))/2, l.frameY, title, frameStyle.Bold(true))

	// Cells, cursor box drawn in its own colour
	cellStyle := tcell.StyleDefault.Foreground(r.theme.Color(gamedata.ColorCell))
	cursorStyle := tcell.StyleDefault.Foreground(r.theme.Color(gamedata.ColorCursor)).Bold(true)
	for row := 0; row < tictactoe.Size; row++ {
		for col := 0; col < tictactoe.Size; col++ {
			pos := tictactoe.Position{Row: row, Col: col}
			x, y := l.cellOrigin(pos)

			style := cellStyle
			if pos == s.Cursor() {
				style = cursorStyle
			}
			r.drawBox(x, y, l.cellW, l.cellH, roundedBox, style)
			r.drawMark(l, x, y, s.Cell(pos))
		}
	}

	helpStyle := tcell.StyleDefault.Foreground(r.theme.Color(gamedata.ColorHelp))
	for i, line := range help {
		r.drawCentered(w, l.helpY+i, line, helpStyle)
	}

	r.canvas.Show()
}

// layoutFor centres the frame, preferring the large glyphs when they fit.
func (r *Renderer) layoutFor(w, h, helpLines int) layout {
	var l layout
	for _, name := range []string{gamedata.GlyphsLarge, gamedata.GlyphsSmall} {
		g := r.theme.Glyphs(name)
		l = layout{
			glyphs: g,
			cellW:  g.Width() + 4,
			cellH:  g.Height() + 2,
		}
		l.frameW = tictactoe.Size*l.cellW + 2
		l.frameH = tictactoe.Size*l.cellH + 2
		if l.frameW <= w && l.frameH+3+maxHelpLines <= h {
			break
		}
	}

	total := 2 + l.frameH + 1 + helpLines
	l.statusY = max((h-total)/2, 0)
	l.frameY = l.statusY + 2
	l.frameX = max((w-l.frameW)/2, 0)
	l.helpY = l.frameY + l.frameH + 1
	return l
}

// drawMark paints the glyph for c centred inside the cell box at (x, y).
func (r *Renderer) drawMark(l layout, x, y int, c tictactoe.Cell) {
	p, ok := c.Player()
	if !ok {
		return
	}

	lines := l.glyphs.X
	color := r.theme.Color(gamedata.ColorX)
	if p == tictactoe.PlayerO {
		lines = l.glyphs.O
		color = r.theme.Color(gamedata.ColorO)
	}
	style := tcell.StyleDefault.Foreground(color).Bold(true)

	innerW, innerH := l.cellW-2, l.cellH-2
	top := y + 1 + (innerH-len(lines))/2
	for i, line := range lines {
		left := x + 1 + (innerW-utf8.RuneCountInString(line))/2
		r.drawText(left, top+i, line, style)
	}
}

// drawBox draws a w by h rectangle outline with its top-left corner at (x, y).
func (r *Renderer) drawBox(x, y, w, h int, b boxRunes, style tcell.Style) {
	right, bottom := x+w-1, y+h-1
	for i := x + 1; i < right; i++ {
		r.canvas.SetContent(i, y, b.horizontal, style)
		r.canvas.SetContent(i, bottom, b.horizontal, style)
	}
	for j := y + 1; j < bottom; j++ {
		r.canvas.SetContent(x, j, b.vertical, style)
		r.canvas.SetContent(right, j, b.vertical, style)
	}
	r.canvas.SetContent(x, y, b.topLeft, style)
	r.canvas.SetContent(right, y, b.topRight, style)
	r.canvas.SetContent(x, bottom, b.bottomLeft, style)
	r.canvas.SetContent(right, bottom, b.bottomRight, style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.canvas.SetContent(x, y, ch, style)
		x++
	}
}

func (r *Renderer) drawCentered(w, y int, text string, style tcell.Style) {
	r.drawText(max((w-utf8.RuneCountInString(text))/2, 0), y, text, style)
}
