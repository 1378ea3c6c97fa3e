// Package cue names the game events that have a sound.
package cue

// Cue identifies a game event with a sound.
type Cue int

const (
	Place Cue = iota
	Blocked
	Win
	Draw
	Reset
)

// String returns a human-readable cue name.
func (c Cue) String() string {
	switch c {
	case Place:
		return "place"
	case Blocked:
		return "blocked"
	case Win:
		return "win"
	case Draw:
		return "draw"
	case Reset:
		return "reset"
	default:
		return "unknown"
	}
}
