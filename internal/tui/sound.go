//go:build audio

package tui

import (
	"log"
	"sync"
	"time"

	"ropeswing/internal/swing"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sound plays cues for session events. It is a swing.Notifier; when the
// speaker could not be opened every call is a no-op.
type Sound struct {
	mu     sync.Mutex
	ready  bool
	logger *log.Logger
}

// NewSound opens the speaker. Failure is logged and leaves the game silent.
func NewSound(logger *log.Logger) *Sound {
	if logger == nil {
		logger = log.Default()
	}
	s := &Sound{logger: logger}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		logger.Printf("ropeswing: audio unavailable: %v", err)
		return s
	}
	s.ready = true
	return s
}

// Notify plays the cue for e without blocking.
func (s *Sound) Notify(e swing.Event) {
	cue, ok := CueFor(e)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, cue.Freq)
	if err != nil {
		s.logger.Printf("ropeswing: tone %.0fHz: %v", cue.Freq, err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(cue.Duration), sine))
}

// Close releases the speaker.
func (s *Sound) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		speaker.Close()
		s.ready = false
	}
}
