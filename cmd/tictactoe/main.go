// Package main is the entry point for the terminal tic-tac-toe game.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/samdwyer/tictactoe/internal/audio"
	"github.com/samdwyer/tictactoe/internal/config"
	"github.com/samdwyer/tictactoe/internal/game"
	"github.com/samdwyer/tictactoe/internal/gamedata"
	"github.com/samdwyer/tictactoe/internal/logging"
	"github.com/samdwyer/tictactoe/internal/telemetry"
	"github.com/samdwyer/tictactoe/internal/ui"
)

func main() {
	// Until the screen is up, problems are reported on stderr
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("tictactoe exited with an error")
	}
}

// run wires the game together and returns once the player quits.
func run() error {
	// Load .env file for local development; a missing file is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg(".env file not loaded")
	}

	cfg, err := config.Load(os.Getenv(config.PathEnv))
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	theme, err := gamedata.LoadTheme()
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}

	logger, logFile, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	defer logFile.Close()

	ctx := context.Background()

	tracer := telemetry.NoopTracer()
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
		if err != nil {
			// Game still works without observability
			logger.Warn().Err(err).Msg("telemetry setup failed")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("telemetry shutdown failed")
				}
			}()
			tracer = telemetry.Tracer("game")
		}
	}

	var sound game.Sounder
	if cfg.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("audio initialization failed, playing without sound")
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	g, err := game.New(game.Config{
		Logger: logger,
		Tracer: tracer,
		Sound:  sound,
		Theme:  theme,
	})
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	if err := g.Run(ctx); err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	if err := ui.WriteSummary(termenv.NewOutput(os.Stdout), theme, g.Summary()); err != nil {
		logger.Error().Err(err).Msg("write session summary")
	}
	return nil
}
