package swing

import "ropeswing/internal/core"

// AnchorID identifies an anchor for the lifetime of a Session.
type AnchorID uint64

// Anchor is a fixed pivot the rope can attach to.
type Anchor struct {
	ID     AnchorID  `json:"id"`
	Pos    core.Vec2 `json:"pos"`
	Active bool      `json:"active"`
}

// Field is the forward-scrolling supply of anchors, ordered by ascending X.
type Field struct {
	anchors []Anchor
	nextID  AnchorID
}

// Anchors exposes the current sequence. Callers must not modify it.
func (f *Field) Anchors() []Anchor { return f.anchors }

// Len returns the number of resident anchors.
func (f *Field) Len() int { return len(f.anchors) }

// Last returns the anchor furthest ahead.
func (f *Field) Last() (Anchor, bool) {
	if len(f.anchors) == 0 {
		return Anchor{}, false
	}
	return f.anchors[len(f.anchors)-1], true
}

// Lookup returns the resident anchor with the given id.
func (f *Field) Lookup(id AnchorID) (Anchor, bool) {
	for _, a := range f.anchors {
		if a.ID == id {
			return a, true
		}
	}
	return Anchor{}, false
}

// Seed discards all anchors and lays out the initial row.
func (f *Field) Seed(rng *core.RNG, p Params) {
	f.anchors = make([]Anchor, 0, p.AnchorCount)
	for i := 0; i < p.AnchorCount; i++ {
		x := p.AnchorOffset + float64(i)*p.AnchorStep + rng.Jitter(p.SeedJitter)
		y := rng.Band(p.AnchorBandTop, p.AnchorBandSpan)
		f.push(core.V(x, y))
	}
}

// Extend appends one anchor when playerX is within the trigger distance of
// the last anchor. It reports whether an anchor was added.
func (f *Field) Extend(playerX float64, rng *core.RNG, p Params) bool {
	last, ok := f.Last()
	if !ok || playerX <= last.Pos.X-p.ExtendTrigger {
		return false
	}
	x := last.Pos.X + p.AnchorStep + rng.Jitter(p.ExtendJitter)
	y := rng.Band(p.AnchorBandTop, p.AnchorBandSpan)
	f.push(core.V(x, y))
	return true
}

// Prune keeps only the newest keep anchors once the sequence grows beyond
// above. When pinned is set, the anchor with id pin survives even if it is
// older than the retained tail; it stays in front of the tail so the order
// is unchanged. Prune returns the number of anchors removed.
func (f *Field) Prune(above, keep int, pin AnchorID, pinned bool) int {
	n := len(f.anchors)
	if n <= above || keep >= n {
		return 0
	}
	if keep < 0 {
		keep = 0
	}
	cut := n - keep
	out := make([]Anchor, 0, keep+1)
	if pinned {
		for _, a := range f.anchors[:cut] {
			if a.ID == pin {
				out = append(out, a)
				break
			}
		}
	}
	out = append(out, f.anchors[cut:]...)
	f.anchors = out
	return n - len(out)
}

// NearestAhead returns the anchor strictly ahead of x with the smallest
// horizontal gap. Ties go to the earlier anchor in the sequence.
func (f *Field) NearestAhead(x float64) (Anchor, bool) {
	var best Anchor
	found := false
	for _, a := range f.anchors {
		if a.Pos.X <= x {
			continue
		}
		if !found || a.Pos.X-x < best.Pos.X-x {
			best = a
			found = true
		}
	}
	return best, found
}

func (f *Field) push(pos core.Vec2) {
	f.nextID++
	f.anchors = append(f.anchors, Anchor{ID: f.nextID, Pos: pos, Active: true})
}
