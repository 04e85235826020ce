package render

import (
	"math"

	"ropeswing/internal/core"
)

// Cell codes written by Rasterize. Higher codes draw over lower ones.
const (
	CellEmpty uint8 = iota
	CellGrid
	CellTrail
	CellAnchor
	CellRope
	CellAnchorHot
	CellPlayer
)

// Rasterize draws sc into grid, where every cell covers cellW by cellH
// screen units. The grid is cleared first.
func Rasterize(sc Scene, grid *core.ByteGrid, cellW, cellH float64) {
	grid.Clear()
	if cellW <= 0 || cellH <= 0 {
		return
	}
	col := func(x float64) int { return int(math.Floor(x / cellW)) }
	row := func(y float64) int { return int(math.Floor(y / cellH)) }

	for _, x := range sc.GridLines {
		c := col(x)
		for y := 0; y < grid.H; y++ {
			grid.Set(c, y, CellGrid)
		}
	}
	line(grid, sc.Trail, cellW, cellH, CellTrail)
	if sc.HasRope {
		line(grid, sc.Rope, cellW, cellH, CellRope)
	}
	for _, a := range sc.Anchors {
		code := CellAnchor
		if a.Highlight {
			code = CellAnchorHot
		}
		grid.Set(col(a.X), row(a.Y), code)
	}
	grid.Set(col(sc.Player.X), row(sc.Player.Y), CellPlayer)
}

// line samples the segment at sub-cell resolution so steep and shallow lines
// both come out connected.
func line(grid *core.ByteGrid, s Segment, cellW, cellH float64, code uint8) {
	dx := (s.X1 - s.X0) / cellW
	dy := (s.Y1 - s.Y0) / cellH
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)) * 2))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := s.X0 + (s.X1-s.X0)*t
		y := s.Y0 + (s.Y1-s.Y0)*t
		grid.Set(int(math.Floor(x/cellW)), int(math.Floor(y/cellH)), code)
	}
}
