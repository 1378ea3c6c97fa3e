package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/tictactoe/internal/cue"
	"github.com/samdwyer/tictactoe/internal/gamedata"
	"github.com/samdwyer/tictactoe/internal/input"
	"github.com/samdwyer/tictactoe/internal/telemetry"
	"github.com/samdwyer/tictactoe/internal/tictactoe"
	"github.com/samdwyer/tictactoe/internal/ui"
)

// drawer paints one frame from the game state.
type drawer interface {
	Render(s *tictactoe.State)
}

// Game owns the board state and the terminal it is played on.
type Game struct {
	screen   *ui.Screen
	renderer drawer
	state    *tictactoe.State
	session  tictactoe.Tally
	sound    Sounder
	tracer   trace.Tracer
	log      zerolog.Logger
	running  bool
}

// New opens the terminal and creates a game ready to Run.
func New(cfg Config) (*Game, error) {
	if cfg.Theme == nil {
		theme, err := gamedata.LoadTheme()
		if err != nil {
			return nil, err
		}
		cfg.Theme = theme
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return newGame(screen, ui.NewRenderer(screen, cfg.Theme), cfg), nil
}

func newGame(screen *ui.Screen, renderer drawer, cfg Config) *Game {
	g := &Game{
		screen:   screen,
		renderer: renderer,
		state:    tictactoe.New(),
		sound:    cfg.Sound,
		tracer:   cfg.Tracer,
		log:      cfg.Logger.With().Str("component", "game").Logger(),
		running:  true,
	}
	if g.sound == nil {
		g.sound = silence{}
	}
	if g.tracer == nil {
		g.tracer = telemetry.NoopTracer()
	}
	return g
}

// Run executes the main game loop until the player quits. The terminal is
// restored before it returns.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	_, initSpan := g.tracer.Start(ctx, "game.init")
	w, h := g.screen.Size()
	initSpan.SetAttributes(
		attribute.Int("screen.width", w),
		attribute.Int("screen.height", h),
	)
	initSpan.End()
	g.log.Info().Int("width", w).Int("height", h).Msg("game started")

	for g.running {
		g.renderer.Render(g.state)

		// Blocks until the next terminal event
		g.handleInput(ctx)
	}

	g.log.Info().
		Int("games", g.session.Games).
		Int("x_wins", g.session.XWins).
		Int("o_wins", g.session.OWins).
		Int("draws", g.session.Draws).
		Msg("game stopped")
	return nil
}

// Summary returns the tally of games finished so far.
func (g *Game) Summary() tictactoe.Tally {
	return g.session
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		g.step(ctx, input.FromKey(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen was finalized underneath us
		g.running = false
	}
}

// step applies one command to the game.
func (g *Game) step(ctx context.Context, cmd input.Command) {
	switch cmd {
	case input.CommandNone:
		return
	case input.CommandQuit:
		g.log.Debug().Msg("quit requested")
		g.running = false
	case input.CommandSelect:
		g.selectCell(ctx)
	case input.CommandReset:
		g.reset(ctx)
	default:
		if input.Dispatch(g.state, cmd) {
			g.log.Debug().Str("cmd", cmd.String()).Stringer("cursor", g.state.Cursor()).Msg("cursor moved")
		}
	}
}

// selectCell places the active player's mark and handles the end of a game.
func (g *Game) selectCell(ctx context.Context) {
	ctx, span := g.tracer.Start(ctx, "cell.select")
	defer span.End()

	cursor, player := g.state.Cursor(), g.state.ActivePlayer()
	placed := input.Dispatch(g.state, input.CommandSelect)
	span.SetAttributes(
		attribute.Int("cell.row", cursor.Row),
		attribute.Int("cell.col", cursor.Col),
		attribute.String("player", player.String()),
		attribute.Bool("placed", placed),
	)

	if !placed {
		g.log.Debug().Stringer("cell", cursor).Msg("select ignored")
		g.sound.Play(cue.Blocked)
		return
	}

	g.log.Debug().Stringer("cell", cursor).Stringer("player", player).Msg("mark placed")

	if phase := phaseOf(g.state); phase != PhasePlaying {
		g.endGame(ctx, phase)
		return
	}
	g.sound.Play(cue.Place)
}

// endGame records a game that just finished.
func (g *Game) endGame(ctx context.Context, phase Phase) {
	result := g.state.Result()

	_, span := g.tracer.Start(ctx, "game.end")
	span.SetAttributes(
		attribute.String("phase", phase.String()),
		attribute.String("outcome", result.String()),
		attribute.Int("moves", tictactoe.Size*tictactoe.Size-g.state.RemainingEmpty()),
	)
	span.End()

	g.session.Record(result)
	g.log.Info().Str("outcome", result.String()).Int("games", g.session.Games).Msg("game finished")

	if phase == PhaseDraw {
		g.sound.Play(cue.Draw)
	} else {
		g.sound.Play(cue.Win)
	}
}

// reset starts a new game once the current one is over.
func (g *Game) reset(ctx context.Context) {
	if !input.Dispatch(g.state, input.CommandReset) {
		g.log.Debug().Msg("reset ignored while playing")
		return
	}

	_, span := g.tracer.Start(ctx, "game.reset")
	span.SetAttributes(attribute.Int("session.games", g.session.Games))
	span.End()

	g.log.Info().Msg("new game")
	g.sound.Play(cue.Reset)
}
