package pilot

import (
	"io"
	"log"
	"slices"
	"testing"

	"ropeswing/internal/core"
	"ropeswing/internal/swing"
)

func newSession(seed int64) *swing.Session {
	cfg := swing.DefaultConfig()
	cfg.Seed = seed
	cfg.Logger = log.New(io.Discard, "", 0)
	return swing.New(cfg)
}

func TestRegistryListsBuiltins(t *testing.T) {
	names := Names()
	if !slices.Contains(names, "greedy") || !slices.Contains(names, "idle") {
		t.Fatalf("names = %v", names)
	}
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	before := len(Pilots())
	Register("", func(map[string]string) Pilot { return Idle{} })
	Register("nil", nil)
	if len(Pilots()) != before {
		t.Fatal("empty names and nil factories should be ignored")
	}
}

func TestIdleFallsOut(t *testing.T) {
	s := newSession(1)
	res := Fly(s, Idle{}, 10000)
	if !res.Finished {
		t.Fatal("idle pilot should fall out of bounds")
	}
	if res.Taps != 0 {
		t.Fatalf("idle tapped %d times", res.Taps)
	}
	if res.Score != s.Score() || res.Ticks != s.Tick() {
		t.Fatalf("result %+v disagrees with session", res)
	}
}

func TestFlyIsDeterministicPerSeed(t *testing.T) {
	g := NewGreedy(nil)
	a := Fly(newSession(77), g, 3000)
	b := Fly(newSession(77), g, 3000)
	if a != b {
		t.Fatalf("same seed produced %+v and %+v", a, b)
	}
	if a.Taps == 0 {
		t.Fatal("greedy pilot should hook at least once")
	}
}

func TestFlyRestartsAfterGameOver(t *testing.T) {
	s := newSession(5)
	first := Fly(s, Idle{}, 10000)
	second := Fly(s, Idle{}, 10000)
	if !first.Finished || !second.Finished {
		t.Fatal("both flights should finish")
	}
	if second.Ticks == 0 {
		t.Fatal("second flight should have restarted the game")
	}
}

func TestGreedyDecisions(t *testing.T) {
	g := NewGreedy(map[string]string{"release": "10", "min_rise": "0.5"})
	if g.Release != 10 || g.MinRise != 0.5 {
		t.Fatalf("config not applied: %+v", g)
	}
	anchor := swing.Anchor{ID: 4, Pos: core.V(500, 150), Active: true}

	falling := swing.View{Status: swing.StatusPlaying, Body: swing.Body{Pos: core.V(100, 400), Prev: core.V(95, 395)}}
	if !g.Decide(falling) {
		t.Fatal("should hook while falling")
	}
	rising := swing.View{Status: swing.StatusPlaying, Body: swing.Body{Pos: core.V(100, 400), Prev: core.V(95, 405)}}
	if g.Decide(rising) {
		t.Fatal("should not hook while rising")
	}

	swingView := func(pos, prev core.Vec2) swing.View {
		return swing.View{
			Status:   swing.StatusPlaying,
			Body:     swing.Body{Pos: pos, Prev: prev},
			Anchors:  []swing.Anchor{anchor},
			Rope:     swing.Rope{Anchor: anchor.ID, Length: 300},
			Attached: true,
		}
	}
	if g.Decide(swingView(core.V(490, 450), core.V(480, 450))) {
		t.Fatal("should hold before passing the anchor")
	}
	if !g.Decide(swingView(core.V(520, 300), core.V(515, 302))) {
		t.Fatal("should release past the anchor while rising")
	}
	if g.Decide(swingView(core.V(520, 300), core.V(515, 298))) {
		t.Fatal("should hold while dropping")
	}
	if g.Decide(swing.View{Status: swing.StatusGameOver}) {
		t.Fatal("should not tap outside play")
	}
}
