package pilot

import (
	"strconv"

	"ropeswing/internal/swing"
)

func init() {
	Register("greedy", func(cfg map[string]string) Pilot { return NewGreedy(cfg) })
	Register("idle", func(map[string]string) Pilot { return Idle{} })
}

// Greedy hooks the nearest anchor ahead as soon as the body starts to fall
// and lets go once it has swung past the anchor and is rising.
type Greedy struct {
	// Release is how far past the anchor, horizontally, the body must be
	// before letting go.
	Release float64
	// MinRise is the upward speed required to let go.
	MinRise float64
}

// NewGreedy builds a Greedy pilot. Recognised keys: release, min_rise.
func NewGreedy(cfg map[string]string) *Greedy {
	g := &Greedy{Release: 40, MinRise: 1}
	if v, err := strconv.ParseFloat(cfg["release"], 64); err == nil && v >= 0 {
		g.Release = v
	}
	if v, err := strconv.ParseFloat(cfg["min_rise"], 64); err == nil && v >= 0 {
		g.MinRise = v
	}
	return g
}

func (g *Greedy) Name() string { return "greedy" }

// Decide implements Pilot.
func (g *Greedy) Decide(v swing.View) bool {
	if v.Status != swing.StatusPlaying {
		return false
	}
	vel := v.Body.Velocity()
	if !v.Attached {
		return vel.Y > 0
	}
	a, ok := v.RopeAnchor()
	if !ok {
		return false
	}
	return v.Body.Pos.X > a.Pos.X+g.Release && -vel.Y >= g.MinRise
}

// Idle never taps.
type Idle struct{}

func (Idle) Name() string           { return "idle" }
func (Idle) Decide(swing.View) bool { return false }
