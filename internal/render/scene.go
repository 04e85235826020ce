// Package render projects a session view into screen space and draws it.
package render

import (
	"math"

	"ropeswing/internal/core"
	"ropeswing/internal/swing"
)

const (
	GridSpacing  = 100.0
	AnchorRadius = 6.0
	PlayerRadius = 10.0
	// TrailFactor is how many ticks of velocity the motion trail spans.
	TrailFactor = 5.0
)

// Dot is a filled circle in screen coordinates.
type Dot struct {
	X, Y, R   float64
	Highlight bool
	ID        swing.AnchorID
}

// Segment is a line in screen coordinates.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Scene is everything a frame shows, already offset by the camera.
type Scene struct {
	Size      core.Size
	GridLines []float64
	Anchors   []Dot
	Rope      Segment
	HasRope   bool
	Player    Dot
	Trail     Segment
	// Velocity is the per-tick displacement, kept for debug overlays.
	Velocity core.Vec2
}

// BuildScene projects v into a viewport of the given size. Only the camera's
// horizontal offset is applied; world Y is screen Y.
func BuildScene(v swing.View, size core.Size) Scene {
	cam := v.Camera
	sc := Scene{Size: size}

	for x := math.Mod(-cam, GridSpacing); x < float64(size.W); x += GridSpacing {
		sc.GridLines = append(sc.GridLines, x)
	}

	for _, a := range v.Anchors {
		sc.Anchors = append(sc.Anchors, Dot{
			X:         a.Pos.X - cam,
			Y:         a.Pos.Y,
			R:         AnchorRadius,
			Highlight: v.Attached && a.ID == v.Rope.Anchor,
			ID:        a.ID,
		})
	}

	pos := v.Body.Pos
	if a, ok := v.RopeAnchor(); ok {
		sc.Rope = Segment{X0: pos.X - cam, Y0: pos.Y, X1: a.Pos.X - cam, Y1: a.Pos.Y}
		sc.HasRope = true
	}

	sc.Player = Dot{X: pos.X - cam, Y: pos.Y, R: PlayerRadius}
	sc.Velocity = v.Body.Velocity()
	tail := pos.Sub(sc.Velocity.Scale(TrailFactor))
	sc.Trail = Segment{X0: pos.X - cam, Y0: pos.Y, X1: tail.X - cam, Y1: tail.Y}
	return sc
}
