// Package audio plays short synthesized cues for game events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/samdwyer/tictactoe/internal/cue"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneGap    = 30 * time.Millisecond
)

type tone struct {
	freq float64
	dur  time.Duration
}

// cueTones lists the notes of each cue, played in order.
var cueTones = map[cue.Cue][]tone{
	cue.Place:   {{880, 50 * time.Millisecond}},
	cue.Blocked: {{160, 120 * time.Millisecond}},
	cue.Win:     {{523.25, 100 * time.Millisecond}, {659.25, 100 * time.Millisecond}, {783.99, 200 * time.Millisecond}},
	cue.Draw:    {{440, 120 * time.Millisecond}, {330, 200 * time.Millisecond}},
	cue.Reset:   {{660, 40 * time.Millisecond}, {990, 40 * time.Millisecond}},
}

// SoundManager owns the speaker and mixes cues onto it.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager. Nothing plays until Initialize succeeds.
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues the cue on the mixer. It is a no-op before Initialize.
func (sm *SoundManager) Play(c cue.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer, err := cueStreamer(c)
	if err != nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// Cleanup silences everything queued on the mixer.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// cueStreamer builds the finite tone sequence for c.
func cueStreamer(c cue.Cue) (beep.Streamer, error) {
	tones, ok := cueTones[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue %d", c)
	}

	parts := make([]beep.Streamer, 0, len(tones)*2)
	for i, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return nil, fmt.Errorf("cue %s: %w", c, err)
		}
		if i > 0 {
			parts = append(parts, beep.Silence(sampleRate.N(toneGap)))
		}
		parts = append(parts, beep.Take(sampleRate.N(t.dur), sine))
	}
	return beep.Seq(parts...), nil
}
