package swing

import (
	"math"
	"testing"

	"ropeswing/internal/core"
)

func TestIntegrateAppliesDampedVelocityAndGravity(t *testing.T) {
	b := Body{Pos: core.V(100, 400), Prev: core.V(92, 395)}
	b.Integrate(0.25, 0.995)

	wantX := 100 + 8*0.995
	wantY := 400 + 5*0.995 + 0.25
	if math.Abs(b.Pos.X-wantX) > 1e-9 || math.Abs(b.Pos.Y-wantY) > 1e-9 {
		t.Fatalf("pos = %+v, want (%f, %f)", b.Pos, wantX, wantY)
	}
	if b.Prev != core.V(100, 400) {
		t.Fatalf("prev = %+v, want the pre-step position", b.Prev)
	}
}

func TestIntegrateAtRestOnlyFalls(t *testing.T) {
	b := Body{Pos: core.V(10, 10), Prev: core.V(10, 10)}
	b.Integrate(0.5, 0.9)
	if b.Pos != core.V(10, 10.5) {
		t.Fatalf("pos = %+v, want (10, 10.5)", b.Pos)
	}
}

func TestConstrainClampsToRopeLength(t *testing.T) {
	anchor := core.V(0, 0)
	b := Body{Pos: core.V(30, 40)}

	if !b.Constrain(anchor, 25) {
		t.Fatal("expected a stretched rope to correct the body")
	}
	if d := b.Pos.Dist(anchor); math.Abs(d-25) > 1e-9 {
		t.Fatalf("distance after clamp = %f, want 25", d)
	}
	if math.Abs(b.Pos.X-15) > 1e-9 || math.Abs(b.Pos.Y-20) > 1e-9 {
		t.Fatalf("pos = %+v, want (15, 20) along the original direction", b.Pos)
	}
}

func TestConstrainLeavesSlackRopeAlone(t *testing.T) {
	b := Body{Pos: core.V(3, 4)}
	if b.Constrain(core.V(0, 0), 10) {
		t.Fatal("slack rope must not correct the body")
	}
	if b.Pos != core.V(3, 4) {
		t.Fatalf("pos moved to %+v", b.Pos)
	}

	b = Body{Pos: core.V(6, 8)}
	if b.Constrain(core.V(0, 0), 10) {
		t.Fatal("body exactly at rope length must not be corrected")
	}
}

func TestConstrainAtAnchorDoesNotProduceNaN(t *testing.T) {
	b := Body{Pos: core.V(50, 50)}
	b.Constrain(core.V(50, 50), 0)
	if math.IsNaN(b.Pos.X) || math.IsNaN(b.Pos.Y) {
		t.Fatalf("pos = %+v, want finite coordinates", b.Pos)
	}
	if b.Pos != core.V(50, 50) {
		t.Fatalf("pos moved to %+v", b.Pos)
	}
}
