package swing

import "ropeswing/internal/core"

// Body is the swinging point mass. Velocity is implicit: Pos - Prev.
type Body struct {
	Pos  core.Vec2 `json:"pos"`
	Prev core.Vec2 `json:"prev"`
}

// Velocity returns the displacement covered during the last tick.
func (b Body) Velocity() core.Vec2 { return b.Pos.Sub(b.Prev) }

// Integrate advances the body by one Verlet step. Gravity only acts on Y.
func (b *Body) Integrate(gravity, damping float64) {
	v := b.Pos.Sub(b.Prev).Scale(damping)
	b.Prev = b.Pos
	b.Pos = b.Pos.Add(v)
	b.Pos.Y += gravity
}

// Constrain projects the body back onto the circle of radius length around
// anchor when it has moved beyond it. A slack rope leaves the body alone, and
// a body sitting exactly on the anchor is skipped since it has no direction.
// It reports whether a correction was applied.
func (b *Body) Constrain(anchor core.Vec2, length float64) bool {
	delta := b.Pos.Sub(anchor)
	if delta.Len() <= length {
		return false
	}
	dir, ok := delta.Normalize()
	if !ok {
		return false
	}
	b.Pos = anchor.Add(dir.Scale(length))
	return true
}
