//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 5, G: 5, B: 8, A: 255}
	gridColor       = color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 255}
	anchorColor     = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	neonColor       = color.RGBA{R: 0x00, G: 0xf2, B: 0xff, A: 255}
	neonGlow        = color.RGBA{R: 0x00, G: 0x48, B: 0x4c, A: 76}
	playerColor     = color.White
	playerGlow      = color.RGBA{R: 60, G: 60, B: 60, A: 60}
)

// Painter draws scenes onto an ebiten image with vector shapes.
type Painter struct{}

// NewPainter returns a Painter.
func NewPainter() *Painter { return &Painter{} }

// Draw renders sc onto dst.
func (p *Painter) Draw(dst *ebiten.Image, sc Scene) {
	dst.Fill(backgroundColor)
	h := float32(sc.Size.H)

	for _, x := range sc.GridLines {
		vector.StrokeLine(dst, float32(x), 0, float32(x), h, 1, gridColor, false)
	}

	for _, a := range sc.Anchors {
		if a.Highlight {
			vector.FillCircle(dst, float32(a.X), float32(a.Y), float32(a.R*2.5), neonGlow, true)
			vector.FillCircle(dst, float32(a.X), float32(a.Y), float32(a.R), neonColor, true)
			continue
		}
		vector.FillCircle(dst, float32(a.X), float32(a.Y), float32(a.R), anchorColor, true)
	}

	if sc.HasRope {
		r := sc.Rope
		vector.StrokeLine(dst, float32(r.X0), float32(r.Y0), float32(r.X1), float32(r.Y1), 8, neonGlow, true)
		vector.StrokeLine(dst, float32(r.X0), float32(r.Y0), float32(r.X1), float32(r.Y1), 3, neonColor, true)
	}

	pl := sc.Player
	vector.FillCircle(dst, float32(pl.X), float32(pl.Y), float32(pl.R*1.8), playerGlow, true)
	vector.FillCircle(dst, float32(pl.X), float32(pl.Y), float32(pl.R), playerColor, true)
	t := sc.Trail
	vector.StrokeLine(dst, float32(t.X0), float32(t.Y0), float32(t.X1), float32(t.Y1), 2, playerColor, true)
}
