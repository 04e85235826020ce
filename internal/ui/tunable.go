package ui

import "ropeswing/internal/core"

// Tunable is a simulation whose parameters the HUD can show and adjust.
type Tunable interface {
	core.ParameterControlsProvider
	core.FloatParameterSetter
	Parameters() core.ParameterSnapshot
}
