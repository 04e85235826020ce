package tui

import (
	"time"

	"ropeswing/internal/swing"
)

// Cue is a short sine tone.
type Cue struct {
	Freq     float64
	Duration time.Duration
}

// CueFor returns the tone played for a session event, if any.
func CueFor(e swing.Event) (Cue, bool) {
	switch e.Kind {
	case swing.EventAttach:
		return Cue{Freq: 880, Duration: 50 * time.Millisecond}, true
	case swing.EventDetach:
		return Cue{Freq: 587, Duration: 40 * time.Millisecond}, true
	case swing.EventHighScore:
		return Cue{Freq: 1320, Duration: 180 * time.Millisecond}, true
	case swing.EventStatus:
		if e.Status == swing.StatusGameOver {
			return Cue{Freq: 196, Duration: 300 * time.Millisecond}, true
		}
	}
	return Cue{}, false
}
