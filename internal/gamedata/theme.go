package gamedata

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Color names used by the renderer.
const (
	ColorFrame  = "frame"
	ColorCell   = "cell"
	ColorCursor = "cursor"
	ColorX      = "x"
	ColorO      = "o"
	ColorStatus = "status"
	ColorHelp   = "help"
)

// Glyph set names, largest first.
const (
	GlyphsLarge = "large"
	GlyphsSmall = "small"
)

// GlyphSet is the art drawn inside a board cell for each mark.
type GlyphSet struct {
	Name string   `json:"name"`
	X    []string `json:"x"`
	O    []string `json:"o"`
}

// Height returns the number of lines of the tallest glyph.
func (g *GlyphSet) Height() int {
	return max(len(g.X), len(g.O))
}

// Width returns the rune width of the widest glyph line.
func (g *GlyphSet) Width() int {
	w := 0
	for _, lines := range [][]string{g.X, g.O} {
		for _, line := range lines {
			w = max(w, utf8.RuneCountInString(line))
		}
	}
	return w
}

// Theme holds the board colours and glyph sets loaded from theme.json.
type Theme struct {
	Colors    map[string]string `json:"colors"`
	GlyphSets []GlyphSet        `json:"glyphSets"`

	resolved map[string]tcell.Color
}

// LoadTheme loads and validates the embedded theme.json.
func LoadTheme() (*Theme, error) {
	theme, err := Load[Theme]("theme.json")
	if err != nil {
		return nil, err
	}
	if err := theme.init(); err != nil {
		return nil, err
	}
	return &theme, nil
}

// MustLoadTheme loads the theme, panicking on error.
func MustLoadTheme() *Theme {
	theme, err := LoadTheme()
	if err != nil {
		panic(err)
	}
	return theme
}

func (t *Theme) init() error {
	if t.Glyphs(GlyphsSmall).Name != GlyphsSmall {
		return errors.New("theme.json: missing small glyph set")
	}

	t.resolved = make(map[string]tcell.Color, len(t.Colors))
	for name, hex := range t.Colors {
		c, err := ParseHexColor(hex)
		if err != nil {
			return fmt.Errorf("theme.json: color %s: %w", name, err)
		}
		t.resolved[name] = c
	}
	return nil
}

// Color returns the named colour, or white if the theme does not define it.
func (t *Theme) Color(name string) tcell.Color {
	if c, ok := t.resolved[name]; ok {
		return c
	}
	return tcell.ColorWhite
}

// Glyphs returns the named glyph set, falling back to the small set.
func (t *Theme) Glyphs(name string) *GlyphSet {
	var small *GlyphSet
	for i := range t.GlyphSets {
		switch t.GlyphSets[i].Name {
		case name:
			return &t.GlyphSets[i]
		case GlyphsSmall:
			small = &t.GlyphSets[i]
		}
	}
	if small == nil {
		return &GlyphSet{Name: "fallback", X: []string{"X"}, O: []string{"O"}}
	}
	return small
}
