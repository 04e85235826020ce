package core

// Size describes the dimensions of a viewport in pixels (or cells for the
// terminal frontend).
type Size struct {
	W int
	H int
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Sim defines the minimal contract a tick-driven simulation implements.
type Sim interface {
	Name() string
	Reset(seed int64)
	Step()
}
