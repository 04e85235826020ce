package swing

import "math"

// DistanceScore converts a horizontal position into whole score units.
func DistanceScore(x, scale float64) int {
	if scale <= 0 {
		return 0
	}
	return int(math.Floor(x / scale))
}

// Scorer tracks the best distance reached in the current game.
type Scorer struct {
	Value int
}

// Observe records the score for x and reports whether it increased. The
// score never decreases, even when the player swings back.
func (s *Scorer) Observe(x, scale float64) bool {
	current := DistanceScore(x, scale)
	if current <= s.Value {
		return false
	}
	s.Value = current
	return true
}
