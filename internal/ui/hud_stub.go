//go:build !ebiten

package ui

import (
	"ropeswing/internal/core"
	"ropeswing/internal/swing"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*Board, Tunable) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(core.Size) (swing.Command, bool, bool) { return 0, false, false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
