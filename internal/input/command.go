// Package input maps terminal key events to game commands and applies them.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tictactoe/internal/tictactoe"
)

// Command is a player intent decoded from a key press.
type Command int

const (
	// CommandNone is an unbound key.
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandMoveUp
	CommandMoveDown
	CommandSelect
	CommandReset
	CommandQuit
)

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandMoveLeft:
		return "move_left"
	case CommandMoveRight:
		return "move_right"
	case CommandMoveUp:
		return "move_up"
	case CommandMoveDown:
		return "move_down"
	case CommandSelect:
		return "select"
	case CommandReset:
		return "reset"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// FromKey decodes a key press. r is only consulted for tcell.KeyRune.
func FromKey(key tcell.Key, r rune) Command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit
	case tcell.KeyLeft:
		return CommandMoveLeft
	case tcell.KeyRight:
		return CommandMoveRight
	case tcell.KeyUp:
		return CommandMoveUp
	case tcell.KeyDown:
		return CommandMoveDown
	case tcell.KeyEnter:
		return CommandSelect
	case tcell.KeyRune:
		switch r {
		case ' ':
			return CommandSelect
		case 'r', 'R':
			return CommandReset
		case 'q', 'Q':
			return CommandQuit
		}
	}
	return CommandNone
}

// Dispatch applies cmd to the game and reports whether the state changed.
// Quit and unbound keys leave the state alone.
func Dispatch(s *tictactoe.State, cmd Command) bool {
	switch cmd {
	case CommandMoveLeft:
		return s.MoveCursor(tictactoe.Horizontal, -1)
	case CommandMoveRight:
		return s.MoveCursor(tictactoe.Horizontal, 1)
	case CommandMoveUp:
		return s.MoveCursor(tictactoe.Vertical, -1)
	case CommandMoveDown:
		return s.MoveCursor(tictactoe.Vertical, 1)
	case CommandSelect:
		return s.SelectCell()
	case CommandReset:
		return s.Reset()
	default:
		return false
	}
}
