package game

import (
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/tictactoe/internal/cue"
	"github.com/samdwyer/tictactoe/internal/gamedata"
)

// Sounder plays audio cues for game events.
type Sounder interface {
	Play(cue.Cue)
}

// Config holds the collaborators a game runs with. Zero values are replaced
// with silent defaults.
type Config struct {
	Logger zerolog.Logger
	Tracer trace.Tracer // nil disables tracing
	Sound  Sounder      // nil disables sound
	Theme  *gamedata.Theme
}

type silence struct{}

func (silence) Play(cue.Cue) {}
