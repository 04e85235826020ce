//go:build !audio

package tui

import (
	"log"

	"ropeswing/internal/swing"
)

// Sound is a silent placeholder used when the audio build tag is absent.
type Sound struct{}

// NewSound logs that the build has no audio and returns a silent Sound.
func NewSound(logger *log.Logger) *Sound {
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf("ropeswing: sound cues need the 'audio' build tag")
	return &Sound{}
}

// Notify is a no-op in builds without audio.
func (s *Sound) Notify(swing.Event) {}

// Close is a no-op in builds without audio.
func (s *Sound) Close() {}
