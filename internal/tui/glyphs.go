// Package tui runs the game in a terminal with tcell.
package tui

import (
	"ropeswing/internal/core"
	"ropeswing/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Canvas is the part of tcell.Screen the painter writes to.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Glyph is how a rasterized cell code appears in the terminal.
type Glyph struct {
	Rune  rune
	Style tcell.Style
}

var (
	neon       = tcell.NewRGBColor(0x00, 0xf2, 0xff)
	background = tcell.NewRGBColor(5, 5, 8)
	base       = tcell.StyleDefault.Background(background)
)

var palette = [...]Glyph{
	render.CellEmpty:     {' ', base},
	render.CellGrid:      {'│', base.Foreground(tcell.NewRGBColor(0x1a, 0x1a, 0x1a))},
	render.CellTrail:     {'·', base.Foreground(tcell.ColorGray)},
	render.CellAnchor:    {'o', base.Foreground(tcell.NewRGBColor(0x55, 0x55, 0x55))},
	render.CellRope:      {'•', base.Foreground(neon)},
	render.CellAnchorHot: {'O', base.Foreground(neon).Bold(true)},
	render.CellPlayer:    {'@', base.Foreground(tcell.ColorWhite).Bold(true)},
}

// GlyphFor maps a cell code to its glyph; unknown codes draw as empty.
func GlyphFor(code uint8) Glyph {
	if int(code) < len(palette) {
		return palette[code]
	}
	return palette[render.CellEmpty]
}

// Paint copies grid onto dst starting at row top.
func Paint(dst Canvas, grid *core.ByteGrid, top int) {
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			g := GlyphFor(grid.At(x, y))
			dst.SetContent(x, top+y, g.Rune, nil, g.Style)
		}
	}
}

// drawText writes s from (x, y), clipped to width w.
func drawText(dst Canvas, x, y, w int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= w {
			return
		}
		if x >= 0 {
			dst.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

// drawCentered writes s centered on row y of a w-wide screen.
func drawCentered(dst Canvas, y, w int, s string, style tcell.Style) {
	drawText(dst, (w-len([]rune(s)))/2, y, w, s, style)
}
