package tui

import (
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"ropeswing/internal/core"
	"ropeswing/internal/render"
	"ropeswing/internal/swing"
	"ropeswing/internal/ui"

	"github.com/gdamore/tcell/v2"
)

type fakeScreen struct {
	w, h  int
	cells map[[2]int]rune
	shown int
}

func newFakeScreen(w, h int) *fakeScreen {
	return &fakeScreen{w: w, h: h, cells: map[[2]int]rune{}}
}

func (s *fakeScreen) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	s.cells[[2]int{x, y}] = r
}
func (s *fakeScreen) Size() (int, int)       { return s.w, s.h }
func (s *fakeScreen) Clear()                 { s.cells = map[[2]int]rune{} }
func (s *fakeScreen) Show()                  { s.shown++ }
func (s *fakeScreen) Sync()                  {}
func (s *fakeScreen) PollEvent() tcell.Event { return nil }

func (s *fakeScreen) row(y int) string {
	var b strings.Builder
	for x := 0; x < s.w; x++ {
		r, ok := s.cells[[2]int{x, y}]
		if !ok {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *fakeScreen) contains(text string) bool {
	for y := 0; y < s.h; y++ {
		if strings.Contains(s.row(y), text) {
			return true
		}
	}
	return false
}

type recordingFeed struct{ views []swing.View }

func (f *recordingFeed) Publish(v swing.View) { f.views = append(f.views, v) }

func newTerminal(t *testing.T, opts Options) (*Terminal, *fakeScreen, *swing.Session) {
	t.Helper()
	board := &ui.Board{}
	cfg := swing.DefaultConfig()
	cfg.Logger = log.New(io.Discard, "", 0)
	cfg.Notifier = board
	s := swing.New(cfg)
	screen := newFakeScreen(120, 40)
	opts.Logger = log.New(io.Discard, "", 0)
	return New(screen, s, board, opts), screen, s
}

func TestKeyAction(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		r    rune
		want Action
	}{
		{tcell.KeyEscape, 0, ActionQuit},
		{tcell.KeyCtrlC, 0, ActionQuit},
		{tcell.KeyEnter, 0, ActionPress},
		{tcell.KeyRune, ' ', ActionPress},
		{tcell.KeyRune, 'q', ActionQuit},
		{tcell.KeyRune, 'r', ActionReset},
		{tcell.KeyRune, 'c', ActionCopy},
		{tcell.KeyRune, 'x', ActionNone},
		{tcell.KeyTab, 0, ActionNone},
	}
	for _, tc := range cases {
		if got := KeyAction(tc.key, tc.r); got != tc.want {
			t.Fatalf("KeyAction(%v, %q) = %d, want %d", tc.key, tc.r, got, tc.want)
		}
	}
}

func TestNewScalesViewportToTerminal(t *testing.T) {
	_, _, s := newTerminal(t, Options{})
	want := core.Size{W: 120 * CellW, H: 39 * CellH}
	if s.Viewport() != want {
		t.Fatalf("viewport = %+v, want %+v", s.Viewport(), want)
	}
}

func TestPressStartsThenTaps(t *testing.T) {
	term, _, s := newTerminal(t, Options{})
	if !term.Apply(ActionPress) {
		t.Fatal("press should not end the loop")
	}
	if s.Status() != swing.StatusPlaying {
		t.Fatalf("status = %v, want PLAYING", s.Status())
	}
	term.Apply(ActionPress)
	if _, attached := s.Rope(); !attached {
		t.Fatal("press while playing should attach")
	}
	term.Apply(ActionPress)
	if _, attached := s.Rope(); attached {
		t.Fatal("second press should detach")
	}
}

func TestMouseDragIsOneTap(t *testing.T) {
	term, _, s := newTerminal(t, Options{})
	term.Apply(ActionPress)

	term.HandleEvent(tcell.NewEventMouse(10, 10, tcell.Button1, tcell.ModNone))
	term.HandleEvent(tcell.NewEventMouse(11, 10, tcell.Button1, tcell.ModNone))
	term.HandleEvent(tcell.NewEventMouse(12, 10, tcell.Button1, tcell.ModNone))
	if _, attached := s.Rope(); !attached {
		t.Fatal("press and drag should leave a single attach")
	}

	term.HandleEvent(tcell.NewEventMouse(12, 10, tcell.ButtonNone, tcell.ModNone))
	if _, attached := s.Rope(); !attached {
		t.Fatal("release should not tap")
	}
	term.HandleEvent(tcell.NewEventMouse(12, 10, tcell.Button1, tcell.ModNone))
	if _, attached := s.Rope(); attached {
		t.Fatal("a second click should detach")
	}
}

func TestModalClickDoesNotTapOnDrag(t *testing.T) {
	term, _, s := newTerminal(t, Options{})
	term.HandleEvent(tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone))
	term.HandleEvent(tcell.NewEventMouse(6, 5, tcell.Button1, tcell.ModNone))
	if s.Status() != swing.StatusPlaying {
		t.Fatalf("status = %v, want PLAYING", s.Status())
	}
	if _, attached := s.Rope(); attached {
		t.Fatal("dragging after the start click must not hook")
	}
}

func TestQuitEndsLoop(t *testing.T) {
	term, _, _ := newTerminal(t, Options{})
	if term.Apply(ActionQuit) {
		t.Fatal("quit should end the loop")
	}
}

func TestCopyOnlyAfterGameOver(t *testing.T) {
	var copied []string
	term, _, s := newTerminal(t, Options{Copy: func(text string) error {
		copied = append(copied, text)
		return nil
	}})
	term.Apply(ActionCopy)
	if len(copied) != 0 {
		t.Fatal("copy before game over should be ignored")
	}

	term.Apply(ActionPress)
	for i := 0; i < 10000 && s.Status() == swing.StatusPlaying; i++ {
		s.Step()
	}
	if s.Status() != swing.StatusGameOver {
		t.Fatal("expected game over")
	}
	term.Apply(ActionCopy)
	if len(copied) != 1 || !strings.HasPrefix(copied[0], "Rope Swing: ") {
		t.Fatalf("copied = %q", copied)
	}
	if term.notice != "result copied" {
		t.Fatalf("notice = %q", term.notice)
	}
}

func TestCopyFailureIsReported(t *testing.T) {
	term, _, s := newTerminal(t, Options{Copy: func(string) error { return errors.New("no clipboard") }})
	term.Apply(ActionPress)
	for i := 0; i < 10000 && s.Status() == swing.StatusPlaying; i++ {
		s.Step()
	}
	if !term.Apply(ActionCopy) {
		t.Fatal("copy failure should not end the loop")
	}
	if term.notice != "clipboard unavailable" {
		t.Fatalf("notice = %q", term.notice)
	}
}

func TestTickPublishesToFeed(t *testing.T) {
	feed := &recordingFeed{}
	term, _, s := newTerminal(t, Options{TPS: 60, Feed: feed})
	term.Apply(ActionPress)

	start := time.Unix(0, 0)
	if n := term.Tick(start); n != 1 {
		t.Fatalf("first tick ran %d steps, want 1", n)
	}
	if n := term.Tick(start.Add(time.Second / 60)); n != 1 {
		t.Fatalf("second tick ran %d steps, want 1", n)
	}
	if s.Tick() != 2 {
		t.Fatalf("session tick = %d, want 2", s.Tick())
	}
	if len(feed.views) != 2 || feed.views[1].Tick != 2 {
		t.Fatalf("published %d views", len(feed.views))
	}
	if n := term.Tick(start.Add(time.Second / 60)); n != 0 {
		t.Fatalf("no time passed, ran %d steps", n)
	}
	if len(feed.views) != 2 {
		t.Fatal("idle tick should not publish")
	}
}

func TestDrawShowsModalsAndStatus(t *testing.T) {
	term, screen, _ := newTerminal(t, Options{})
	term.Draw()
	if !screen.contains("ROPE SWING") || !screen.contains("[ PLAY ]") {
		t.Fatal("start modal missing")
	}
	if !strings.Contains(screen.row(39), "DISTANCE 0m") {
		t.Fatalf("status line = %q", screen.row(39))
	}
	if screen.shown != 1 {
		t.Fatalf("Show called %d times", screen.shown)
	}

	term.Apply(ActionPress)
	term.Draw()
	if screen.contains("ROPE SWING") {
		t.Fatal("start modal should be gone while playing")
	}
	if !screen.contains("@") {
		t.Fatal("player glyph missing")
	}
	if !screen.contains("space: hook") {
		t.Fatal("controls line should offer to hook")
	}
	term.Apply(ActionPress)
	term.Draw()
	if !screen.contains("space: release") {
		t.Fatal("controls line should offer to release while attached")
	}
}

func TestPaintUsesPalette(t *testing.T) {
	grid := core.NewByteGrid(3, 1)
	grid.Set(0, 0, render.CellPlayer)
	grid.Set(1, 0, render.CellAnchorHot)
	screen := newFakeScreen(3, 2)
	Paint(screen, grid, 1)
	if got := screen.row(1); got != "@O " {
		t.Fatalf("row = %q", got)
	}
	if GlyphFor(200).Rune != ' ' {
		t.Fatal("unknown codes should draw empty")
	}
}

func TestCueFor(t *testing.T) {
	if _, ok := CueFor(swing.Event{Kind: swing.EventAttach}); !ok {
		t.Fatal("attach should have a cue")
	}
	if _, ok := CueFor(swing.Event{Kind: swing.EventScore}); ok {
		t.Fatal("score changes should be silent")
	}
	if _, ok := CueFor(swing.Event{Kind: swing.EventStatus, Status: swing.StatusPlaying}); ok {
		t.Fatal("entering play should be silent")
	}
	over, ok := CueFor(swing.Event{Kind: swing.EventStatus, Status: swing.StatusGameOver})
	if !ok || over.Duration <= 0 {
		t.Fatalf("game over cue = %+v, %v", over, ok)
	}
}
