// Package pilot plays sessions without a human, for sweeps and demos.
package pilot

import (
	"slices"

	"ropeswing/internal/swing"
)

// Pilot decides, once per tick, whether to tap.
type Pilot interface {
	Name() string
	Decide(v swing.View) bool
}

// Factory constructs a Pilot using an optional configuration map.
type Factory func(cfg map[string]string) Pilot

var pilots = map[string]Factory{}

// Register adds a pilot factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	pilots[name] = f
}

// Pilots exposes the registry of available pilot factories.
func Pilots() map[string]Factory {
	return pilots
}

// Names lists the registered pilots in sorted order.
func Names() []string {
	names := make([]string, 0, len(pilots))
	for name := range pilots {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Result summarises one flight.
type Result struct {
	Seed     int64
	Score    int
	Ticks    uint64
	Taps     int
	Finished bool
}

// Fly starts a game on s and lets p play it until game over or maxTicks.
func Fly(s *swing.Session, p Pilot, maxTicks int) Result {
	if !s.Start() {
		s.Restart()
	}
	res := Result{Seed: s.Seed()}
	for i := 0; i < maxTicks && s.Status() == swing.StatusPlaying; i++ {
		if p.Decide(s.View()) && s.Tap() {
			res.Taps++
		}
		s.Step()
	}
	res.Score = s.Score()
	res.Ticks = s.Tick()
	res.Finished = s.Status() == swing.StatusGameOver
	return res
}
