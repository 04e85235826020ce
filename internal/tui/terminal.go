package tui

import (
	"context"
	"fmt"
	"log"
	"time"

	"ropeswing/internal/core"
	"ropeswing/internal/render"
	"ropeswing/internal/swing"
	"ropeswing/internal/ui"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
)

// World units covered by one terminal cell. Cells are roughly twice as tall
// as they are wide.
const (
	CellW = 10.0
	CellH = 20.0
)

// Screen is the subset of tcell.Screen the terminal loop uses.
type Screen interface {
	Canvas
	Size() (int, int)
	Clear()
	Show()
	Sync()
	PollEvent() tcell.Event
}

// Publisher receives a view after every tick that advanced the game.
type Publisher interface {
	Publish(swing.View)
}

// Action is a terminal input after key decoding.
type Action uint8

const (
	ActionNone Action = iota
	ActionPress
	ActionQuit
	ActionReset
	ActionCopy
)

// KeyAction decodes a key press.
func KeyAction(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		return ActionPress
	case tcell.KeyRune:
		switch r {
		case ' ':
			return ActionPress
		case 'q', 'Q':
			return ActionQuit
		case 'r', 'R':
			return ActionReset
		case 'c', 'C':
			return ActionCopy
		}
	}
	return ActionNone
}

// Options configures a Terminal.
type Options struct {
	TPS    int
	Feed   Publisher
	Logger *log.Logger
	// Copy writes the result text somewhere shareable. Defaults to the
	// system clipboard.
	Copy func(string) error
}

// Terminal drives a session from a tcell screen. Input arrives on a reader
// goroutine and is applied on the loop goroutine between ticks.
type Terminal struct {
	screen  Screen
	session *swing.Session
	board   *ui.Board
	step    *core.FixedStep
	grid    *core.ByteGrid
	feed    Publisher
	logger  *log.Logger
	copy    func(string) error

	cols, rows int
	notice     string
	// mouseDown is the primary button state from the last mouse event;
	// only the press edge counts as a tap.
	mouseDown bool
}

// New constructs a Terminal. board must be registered as a notifier on the
// session.
func New(screen Screen, session *swing.Session, board *ui.Board, opts Options) *Terminal {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	t := &Terminal{
		screen:  screen,
		session: session,
		board:   board,
		step:    core.NewFixedStep(opts.TPS),
		grid:    core.NewByteGrid(1, 1),
		feed:    opts.Feed,
		logger:  opts.Logger,
		copy:    opts.Copy,
	}
	t.resize()
	return t
}

// Run loops until ctx is done or the player quits.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(t.step.Interval())
	defer ticker.Stop()
	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !t.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			t.Tick(now)
			t.Draw()
		}
	}
}

// HandleEvent applies a tcell event and reports whether the loop continues.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.Apply(KeyAction(ev.Key(), ev.Rune()))
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		pressed := down && !t.mouseDown
		t.mouseDown = down
		if pressed {
			return t.Apply(ActionPress)
		}
	case *tcell.EventResize:
		t.screen.Sync()
		t.resize()
	}
	return true
}

// Apply performs a decoded action and reports whether the loop continues.
// A press starts or restarts from the modals and taps while playing.
func (t *Terminal) Apply(a Action) bool {
	switch a {
	case ActionQuit:
		return false
	case ActionPress:
		p := t.board.Present()
		if p.StartModal || p.GameOverModal {
			t.session.Handle(p.Action)
		} else {
			t.session.Handle(swing.CommandTap)
		}
		t.notice = ""
	case ActionReset:
		t.session.Reset(t.session.Seed())
		t.notice = ""
	case ActionCopy:
		if t.session.Status() != swing.StatusGameOver {
			return true
		}
		if err := t.copy(t.board.ResultText()); err != nil {
			t.logger.Printf("ropeswing: copy result: %v", err)
			t.notice = "clipboard unavailable"
		} else {
			t.notice = "result copied"
		}
	}
	return true
}

// Tick advances the session by every step due at now.
func (t *Terminal) Tick(now time.Time) int {
	n := t.step.Run(now, t.session)
	if n > 0 && t.feed != nil {
		t.feed.Publish(t.session.View())
	}
	return n
}

// Draw renders the playfield, the status line and any modal text.
func (t *Terminal) Draw() {
	t.screen.Clear()
	v := t.session.View()
	sc := render.BuildScene(v, t.session.Viewport())
	render.Rasterize(sc, t.grid, CellW, CellH)
	Paint(t.screen, t.grid, 0)

	p := t.board.Present()
	status := fmt.Sprintf(" DISTANCE %sm  BEST %sm  %s", p.ScoreText, p.HighScoreText, p.Commentary)
	drawText(t.screen, 0, t.rows, t.cols, padRight(status, t.cols), base.Foreground(tcell.ColorWhite).Reverse(true))

	mid := t.rows / 2
	text := base.Foreground(tcell.ColorWhite)
	accent := base.Foreground(neon).Bold(true)
	switch {
	case p.StartModal:
		drawCentered(t.screen, mid-2, t.cols, "ROPE SWING", accent)
		drawCentered(t.screen, mid, t.cols, "Hook the ceiling, swing forward, don't fall.", text)
		drawCentered(t.screen, mid+2, t.cols, "[ "+p.ButtonLabel+" ]  space / enter", accent)
	case p.GameOverModal:
		drawCentered(t.screen, mid-2, t.cols, "GAME OVER", accent)
		drawCentered(t.screen, mid, t.cols, p.FinalScore, text)
		drawCentered(t.screen, mid+2, t.cols, "[ "+p.ButtonLabel+" ]  space / enter    c: copy result", accent)
	case p.ControlsHelp && t.rows > 1:
		drawText(t.screen, 1, t.rows-1, t.cols, "space: "+p.TapHint+"  r: reset  q: quit", base.Foreground(tcell.ColorGray))
	}
	if t.notice != "" {
		drawCentered(t.screen, mid+4, t.cols, t.notice, text)
	}
	t.screen.Show()
}

// resize fits the grid to the screen, keeping the last row for status, and
// scales the session viewport to match.
func (t *Terminal) resize() {
	w, h := t.screen.Size()
	if w < 1 {
		w = 1
	}
	if h < 2 {
		h = 2
	}
	t.cols, t.rows = w, h-1
	t.grid.Resize(t.cols, t.rows)
	t.session.SetViewport(core.Size{W: int(float64(t.cols) * CellW), H: int(float64(t.rows) * CellH)})
}

func padRight(s string, w int) string {
	n := len([]rune(s))
	if n >= w {
		return s
	}
	b := make([]rune, 0, w)
	b = append(b, []rune(s)...)
	for i := n; i < w; i++ {
		b = append(b, ' ')
	}
	return string(b)
}
