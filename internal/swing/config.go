package swing

import (
	"log"
	"strconv"

	"ropeswing/internal/core"
)

// Params holds the physics, generation and scoring constants.
type Params struct {
	Gravity float64
	Damping float64

	StartPos  core.Vec2
	StartPrev core.Vec2

	AnchorCount    int
	AnchorOffset   float64
	AnchorStep     float64
	SeedJitter     float64
	ExtendJitter   float64
	AnchorBandTop  float64
	AnchorBandSpan float64
	ExtendTrigger  float64
	PruneAbove     int
	PruneKeep      int

	CameraLead   float64
	CameraSmooth float64

	ScoreScale float64

	FloorMargin   float64
	CeilingMargin float64
}

// Config controls a Session.
type Config struct {
	Seed     int64
	Viewport core.Size

	Params Params

	Store    ScoreStore
	Notifier Notifier
	Logger   *log.Logger
}

// DefaultParams returns the standard tuning.
func DefaultParams() Params {
	return Params{
		Gravity:        0.25,
		Damping:        0.995,
		StartPos:       core.V(100, 400),
		StartPrev:      core.V(92, 395),
		AnchorCount:    10,
		AnchorOffset:   300,
		AnchorStep:     400,
		SeedJitter:     100,
		ExtendJitter:   150,
		AnchorBandTop:  100,
		AnchorBandSpan: 150,
		ExtendTrigger:  1000,
		PruneAbove:     20,
		PruneKeep:      15,
		CameraLead:     200,
		CameraSmooth:   0.1,
		ScoreScale:     100,
		FloorMargin:    100,
		CeilingMargin:  500,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed:     1337,
		Viewport: core.Size{W: 1280, H: 720},
		Params:   DefaultParams(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	positiveInt(cfg, "w", &c.Viewport.W)
	positiveInt(cfg, "h", &c.Viewport.H)

	p := &c.Params
	nonNegativeFloat(cfg, "gravity", &p.Gravity)
	if v, ok := cfg["damping"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed < 1 {
			p.Damping = parsed
		}
	}
	positiveInt(cfg, "anchor_count", &p.AnchorCount)
	nonNegativeFloat(cfg, "anchor_offset", &p.AnchorOffset)
	positiveFloat(cfg, "anchor_step", &p.AnchorStep)
	nonNegativeFloat(cfg, "seed_jitter", &p.SeedJitter)
	nonNegativeFloat(cfg, "extend_jitter", &p.ExtendJitter)
	nonNegativeFloat(cfg, "anchor_band_top", &p.AnchorBandTop)
	nonNegativeFloat(cfg, "anchor_band_span", &p.AnchorBandSpan)
	positiveFloat(cfg, "extend_trigger", &p.ExtendTrigger)
	positiveInt(cfg, "prune_above", &p.PruneAbove)
	positiveInt(cfg, "prune_keep", &p.PruneKeep)
	if p.PruneKeep > p.PruneAbove {
		p.PruneKeep = p.PruneAbove
	}
	nonNegativeFloat(cfg, "camera_lead", &p.CameraLead)
	if v, ok := cfg["camera_smooth"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed <= 1 {
			p.CameraSmooth = parsed
		}
	}
	positiveFloat(cfg, "score_scale", &p.ScoreScale)
	nonNegativeFloat(cfg, "floor_margin", &p.FloorMargin)
	nonNegativeFloat(cfg, "ceiling_margin", &p.CeilingMargin)
	return c
}

func positiveInt(cfg map[string]string, key string, dst *int) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			*dst = parsed
		}
	}
}

func positiveFloat(cfg map[string]string, key string, dst *float64) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			*dst = parsed
		}
	}
}

func nonNegativeFloat(cfg map[string]string, key string, dst *float64) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			*dst = parsed
		}
	}
}
