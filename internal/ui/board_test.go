package ui

import (
	"io"
	"log"
	"testing"

	"ropeswing/internal/core"
	"ropeswing/internal/swing"
)

func TestBoardFollowsSessionLifecycle(t *testing.T) {
	b := &Board{}
	cfg := swing.DefaultConfig()
	cfg.Seed = 3
	cfg.Viewport = core.Size{W: 800, H: 600}
	cfg.Logger = log.New(io.Discard, "", 0)
	cfg.Notifier = b
	s := swing.New(cfg)

	p := b.Present()
	if !p.StartModal || p.GameOverModal || p.ControlsHelp {
		t.Fatalf("start presentation = %+v", p)
	}
	if p.ButtonLabel != "PLAY" || p.Action != swing.CommandStart {
		t.Fatalf("button = %q action = %v", p.ButtonLabel, p.Action)
	}
	if p.Commentary != `"Tap to hook the ceiling!"` {
		t.Fatalf("commentary = %s", p.Commentary)
	}

	s.Handle(p.Action)
	p = b.Present()
	if p.StartModal || p.GameOverModal || !p.ControlsHelp {
		t.Fatalf("playing presentation = %+v", p)
	}

	if p.TapHint != "hook" {
		t.Fatalf("tap hint before attaching = %q", p.TapHint)
	}
	s.Tap()
	if !b.Attached {
		t.Fatal("board should track the attach event")
	}
	if got := b.Present().TapHint; got != "release" {
		t.Fatalf("tap hint while attached = %q", got)
	}
	s.Tap()
	if b.Attached {
		t.Fatal("board should track the detach event")
	}
	if got := b.Present().TapHint; got != "hook" {
		t.Fatalf("tap hint after detaching = %q", got)
	}

	for i := 0; i < 10000 && s.Status() == swing.StatusPlaying; i++ {
		s.Step()
	}
	if s.Status() != swing.StatusGameOver {
		t.Fatal("an untouched body should eventually fall out of bounds")
	}
	p = b.Present()
	if !p.GameOverModal || p.ButtonLabel != "RETRY" || p.Action != swing.CommandRestart {
		t.Fatalf("game over presentation = %+v", p)
	}
	if p.FinalScore != "Distance: "+p.ScoreText+"m" {
		t.Fatalf("final score = %q", p.FinalScore)
	}
	if b.Score != s.Score() || b.HighScore != s.HighScore() {
		t.Fatalf("board %d/%d, session %d/%d", b.Score, b.HighScore, s.Score(), s.HighScore())
	}
}

func TestResultTextQuotesCommentary(t *testing.T) {
	b := &Board{Score: 12, HighScore: 40, Commentary: "Gravity wins again."}
	want := `Rope Swing: 12m (best 40m) "Gravity wins again."`
	if got := b.ResultText(); got != want {
		t.Fatalf("ResultText() = %q, want %q", got, want)
	}
	b.Commentary = ""
	if got := b.ResultText(); got != "Rope Swing: 12m (best 40m)" {
		t.Fatalf("ResultText() without commentary = %q", got)
	}
}
