//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"ropeswing/internal/render"
	"ropeswing/internal/swing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the scene.
type Overlay struct {
	showVelocity bool
	showRadius   bool
	showIDs      bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the debug layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		o.showVelocity = !o.showVelocity
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		o.showRadius = !o.showRadius
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF4) {
		o.showIDs = !o.showIDs
	}
}

// Draw renders the enabled layers for the given frame.
func (o *Overlay) Draw(screen *ebiten.Image, v swing.View, sc render.Scene) {
	if o.showRadius && sc.HasRope {
		o.drawCircle(screen, sc.Rope.X1, sc.Rope.Y1, v.Rope.Length, 1, radiusColor)
	}
	if o.showVelocity {
		o.drawVelocity(screen, sc)
	}
	if o.showIDs {
		for _, a := range sc.Anchors {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("#%d", a.ID), int(a.X)+8, int(a.Y)-18)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tick %d  anchors %d  camera %.1f", v.Tick, len(v.Anchors), v.Camera), 12, sc.Size.H-40)
	}
}

func (o *Overlay) drawVelocity(screen *ebiten.Image, sc render.Scene) {
	const (
		lengthScale = 8.0
		headAngle   = math.Pi / 6
		headLength  = 8.0
	)
	vel := sc.Velocity
	speed := vel.Len()
	if speed < 1e-3 {
		return
	}
	x0, y0 := sc.Player.X, sc.Player.Y
	tipX := x0 + vel.X*lengthScale
	tipY := y0 + vel.Y*lengthScale
	o.drawLine(screen, x0, y0, tipX, tipY, 2, velocityColor)

	angle := math.Atan2(vel.Y, vel.X)
	o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle+headAngle)*headLength, tipY-math.Sin(angle+headAngle)*headLength, 2, velocityColor)
	o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle-headAngle)*headLength, tipY-math.Sin(angle-headAngle)*headLength, 2, velocityColor)
}

func (o *Overlay) drawCircle(screen *ebiten.Image, cx, cy, r, thickness float64, col color.RGBA) {
	if r <= 0 {
		return
	}
	const segments = 64
	px, py := cx+r, cy
	for i := 1; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		o.drawLine(screen, px, py, x, y, thickness, col)
		px, py = x, y
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

var (
	velocityColor = color.RGBA{R: 255, G: 120, B: 40, A: 220}
	radiusColor   = color.RGBA{R: 0, G: 242, B: 255, A: 90}
)
