package swing

import (
	"strconv"

	"ropeswing/internal/core"
)

// Parameters exposes the active tuning for display.
func (s *Session) Parameters() core.ParameterSnapshot {
	p := s.params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Session",
			Params: []core.Parameter{
				int64Param("seed", "Seed", s.rng.Seed()),
				intParam("w", "Viewport width", s.viewport.W),
				intParam("h", "Viewport height", s.viewport.H),
			},
		},
		{
			Name: "Physics",
			Params: []core.Parameter{
				floatParam("gravity", "Gravity", p.Gravity),
				floatParam("damping", "Damping", p.Damping),
			},
		},
		{
			Name: "Anchors",
			Params: []core.Parameter{
				intParam("anchor_count", "Initial anchors", p.AnchorCount),
				floatParam("anchor_step", "Spacing", p.AnchorStep),
				floatParam("extend_trigger", "Extend trigger", p.ExtendTrigger),
				intParam("prune_above", "Prune above", p.PruneAbove),
				intParam("prune_keep", "Prune keep", p.PruneKeep),
			},
		},
		{
			Name: "Camera",
			Params: []core.Parameter{
				floatParam("camera_lead", "Lead", p.CameraLead),
				floatParam("camera_smooth", "Smoothing", p.CameraSmooth),
			},
		},
	}}
}

var controls = []core.ParameterControl{
	{Key: "gravity", Label: "Gravity", Step: 0.05, Min: 0.05, Max: 1},
	{Key: "damping", Label: "Damping", Step: 0.001, Min: 0.95, Max: 0.999},
	{Key: "camera_smooth", Label: "Camera smoothing", Step: 0.05, Min: 0.05, Max: 1},
}

// ParameterControls lists the values the HUD may adjust at runtime.
func (s *Session) ParameterControls() []core.ParameterControl {
	return append([]core.ParameterControl(nil), controls...)
}

// SetFloatParameter updates an adjustable value, clamped to its control's
// bounds. Unknown keys are rejected.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	for _, c := range controls {
		if c.Key != key {
			continue
		}
		v := c.Clamp(value)
		switch key {
		case "gravity":
			s.params.Gravity = v
		case "damping":
			s.params.Damping = v
		case "camera_smooth":
			s.params.CameraSmooth = v
		}
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}
