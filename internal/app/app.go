//go:build ebiten

package app

import (
	"log"
	"time"

	"ropeswing/internal/core"
	"ropeswing/internal/render"
	"ropeswing/internal/swing"
	"ropeswing/internal/ui"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Publisher receives a view after every tick.
type Publisher interface {
	Publish(swing.View)
}

// Game adapts a swing session to the ebiten.Game interface.
type Game struct {
	session *swing.Session
	board   *ui.Board
	hud     *ui.HUD
	overlay *ui.Overlay
	painter *render.Painter
	feed    Publisher
	logger  *log.Logger

	size core.Size
}

// New constructs a Game for the provided session. board must be registered
// as a notifier on the session. feed may be nil.
func New(session *swing.Session, board *ui.Board, feed Publisher, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		session: session,
		board:   board,
		hud:     ui.NewHUD(board, session),
		overlay: ui.NewOverlay(),
		painter: render.NewPainter(),
		feed:    feed,
		logger:  logger,
		size:    session.Viewport(),
	}
}

// Reset reinitializes the session with the provided seed.
func (g *Game) Reset(seed int64) {
	g.session.Reset(seed)
}

// Update handles per-frame input and advances the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.session.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && g.session.Status() == swing.StatusGameOver {
		if err := clipboard.WriteAll(g.board.ResultText()); err != nil {
			g.logger.Printf("ropeswing: copy result: %v", err)
		}
	}

	g.overlay.Update()

	cmd, fired, consumed := g.hud.Update(g.size)
	switch {
	case fired:
		g.session.Handle(cmd)
	case !consumed && tapped():
		g.session.Handle(swing.CommandTap)
	}

	g.session.Step()
	if g.feed != nil {
		g.feed.Publish(g.session.View())
	}
	return nil
}

// Draw renders the current session state.
func (g *Game) Draw(screen *ebiten.Image) {
	v := g.session.View()
	sc := render.BuildScene(v, g.size)
	g.painter.Draw(screen, sc)
	g.overlay.Draw(screen, v, sc)
	g.hud.Draw(screen)
}

// Layout tracks the window size; the bounds check follows it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := core.Size{W: outsideWidth, H: outsideHeight}
	if !size.Empty() && size != g.size {
		g.size = size
		g.session.SetViewport(size)
	}
	return g.size.W, g.size.H
}

func tapped() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}
