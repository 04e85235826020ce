package ui

import (
	"fmt"
	"strconv"

	"ropeswing/internal/swing"
)

// Board is the UI surface state. It keeps the latest values the session
// reported and nothing else; everything shown is derived from them.
type Board struct {
	Status     swing.Status
	Score      int
	HighScore  int
	Commentary string
	Attached   bool
}

// Notify records the values carried by a session event.
func (b *Board) Notify(e swing.Event) {
	b.Status = e.Status
	b.Score = e.Score
	b.HighScore = e.HighScore
	b.Commentary = e.Commentary
	switch e.Kind {
	case swing.EventAttach:
		b.Attached = true
	case swing.EventDetach, swing.EventStatus:
		b.Attached = false
	}
}

// Presentation is what a frontend shows for the current board.
type Presentation struct {
	StartModal    bool
	GameOverModal bool
	ControlsHelp  bool
	ButtonLabel   string
	ScoreText     string
	HighScoreText string
	Commentary    string
	FinalScore    string
	// TapHint names what the next tap does while playing.
	TapHint string
	// Action is the command the modal button sends.
	Action swing.Command
}

// Present derives the presentation from the board.
func (b *Board) Present() Presentation {
	p := Presentation{
		StartModal:    b.Status == swing.StatusStart,
		GameOverModal: b.Status == swing.StatusGameOver,
		ControlsHelp:  b.Status == swing.StatusPlaying,
		ButtonLabel:   "RETRY",
		ScoreText:     strconv.Itoa(b.Score),
		HighScoreText: strconv.Itoa(b.HighScore),
		Commentary:    fmt.Sprintf("%q", b.Commentary),
		FinalScore:    fmt.Sprintf("Distance: %dm", b.Score),
		Action:        swing.CommandRestart,
		TapHint:       "hook",
	}
	if b.Attached {
		p.TapHint = "release"
	}
	if b.Commentary == "" {
		p.Commentary = ""
	}
	if b.Status == swing.StatusStart {
		p.ButtonLabel = "PLAY"
		p.Action = swing.CommandStart
	}
	return p
}

// ResultText is the shareable summary of the last finished game.
func (b *Board) ResultText() string {
	s := fmt.Sprintf("Rope Swing: %dm (best %dm)", b.Score, b.HighScore)
	if b.Commentary != "" {
		s += " " + fmt.Sprintf("%q", b.Commentary)
	}
	return s
}
