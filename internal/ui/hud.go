//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"ropeswing/internal/core"
	"ropeswing/internal/swing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the score panel, the start/game-over modals and an optional
// tuning panel. It reads everything from the Board.
type HUD struct {
	board *Board
	sim   Tunable

	showTuning bool
	controls   []controlState
	size       core.Size
}

type controlState struct {
	control   core.ParameterControl
	value     float64
	hasValue  bool
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD over board. sim may be nil, which disables the
// tuning panel.
func NewHUD(board *Board, sim Tunable) *HUD {
	h := &HUD{board: board, sim: sim}
	if sim != nil {
		for _, c := range sim.ParameterControls() {
			h.controls = append(h.controls, controlState{control: c})
		}
	}
	return h
}

// Update handles HUD-owned input. It returns the command the modal button
// produced, if any, and whether the pointer press was consumed by the HUD.
func (h *HUD) Update(size core.Size) (cmd swing.Command, fired bool, consumed bool) {
	if h == nil {
		return 0, false, false
	}
	h.size = size
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		h.showTuning = !h.showTuning
	}
	h.layoutControls()
	h.refreshControlValues()

	p := h.board.Present()
	pressed, px, py := pointerJustPressed()
	if h.showTuning && pressed && px >= h.panelLeft() {
		h.handleTuningClick(px, py)
		return 0, false, true
	}
	if !p.StartModal && !p.GameOverModal {
		return 0, false, false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return p.Action, true, true
	}
	if pressed && pointInRect(px, py, h.buttonRect()) {
		return p.Action, true, true
	}
	return 0, false, pressed
}

// Draw paints the HUD over the scene.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	p := h.board.Present()
	face := basicfont.Face7x13

	text.Draw(screen, "DISTANCE "+p.ScoreText+"m", face, panelPadding, panelPadding+headerBaseline, textColor)
	text.Draw(screen, "BEST "+p.HighScoreText+"m", face, panelPadding, panelPadding+headerBaseline+lineGap, dimTextColor)
	if p.Commentary != "" {
		w := text.BoundString(face, p.Commentary).Dx()
		text.Draw(screen, p.Commentary, face, (h.size.W-w)/2, panelPadding+headerBaseline, neonTextColor)
	}
	if p.ControlsHelp {
		help := "TAP / SPACE: " + p.TapHint + "    F1: tuning    F2-F4: debug"
		w := text.BoundString(face, help).Dx()
		text.Draw(screen, help, face, (h.size.W-w)/2, h.size.H-panelPadding, dimTextColor)
	}

	switch {
	case p.StartModal:
		h.drawModal(screen, "ROPE SWING", "Hook the ceiling, swing forward, don't fall.", p.ButtonLabel)
	case p.GameOverModal:
		h.drawModal(screen, "GAME OVER", p.FinalScore, p.ButtonLabel)
	}

	if h.showTuning {
		h.drawTuning(screen)
	}
}

func (h *HUD) drawModal(screen *ebiten.Image, title, body, label string) {
	face := basicfont.Face7x13
	cx, cy := h.size.W/2, h.size.H/2
	vector.FillRect(screen, float32(cx-modalW/2), float32(cy-modalH/2), modalW, modalH, modalColor, false)
	vector.StrokeRect(screen, float32(cx-modalW/2), float32(cy-modalH/2), modalW, modalH, 1, neonTextColor, false)

	tw := text.BoundString(face, title).Dx()
	text.Draw(screen, title, face, cx-tw/2, cy-modalH/2+28, neonTextColor)
	bw := text.BoundString(face, body).Dx()
	text.Draw(screen, body, face, cx-bw/2, cy-4, textColor)

	btn := h.buttonRect()
	vector.FillRect(screen, float32(btn.Min.X), float32(btn.Min.Y), float32(btn.Dx()), float32(btn.Dy()), buttonColor, false)
	lw := text.BoundString(face, label).Dx()
	text.Draw(screen, label, face, btn.Min.X+(btn.Dx()-lw)/2, btn.Min.Y+btn.Dy()/2+4, textColor)
}

func (h *HUD) buttonRect() image.Rectangle {
	cx, cy := h.size.W/2, h.size.H/2
	return image.Rect(cx-buttonW/2, cy+20, cx+buttonW/2, cy+20+buttonH)
}

func (h *HUD) panelLeft() int { return h.size.W - tuningWidth }

func (h *HUD) layoutControls() {
	left := h.panelLeft()
	for i := range h.controls {
		top := tuningTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(left+tuningWidth-panelPadding-buttonSize, buttonY, left+tuningWidth-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
}

func (h *HUD) refreshControlValues() {
	if h.sim == nil || len(h.controls) == 0 {
		return
	}
	snap := h.sim.Parameters()
	for i := range h.controls {
		st := &h.controls[i]
		param, ok := snap.Lookup(st.control.Key)
		if !ok {
			st.hasValue = false
			continue
		}
		v, err := strconv.ParseFloat(param.Value, 64)
		st.value, st.hasValue = v, err == nil
	}
}

func (h *HUD) handleTuningClick(x, y int) {
	for i := range h.controls {
		st := &h.controls[i]
		if !st.hasValue {
			continue
		}
		switch {
		case pointInRect(x, y, st.minusRect):
			h.adjust(st, -1)
			return
		case pointInRect(x, y, st.plusRect):
			h.adjust(st, 1)
			return
		}
	}
}

func (h *HUD) adjust(st *controlState, direction int) {
	target := st.control.Clamp(st.value + float64(direction)*st.control.Step)
	if math.Abs(target-st.value) < 1e-9 {
		return
	}
	if h.sim.SetFloatParameter(st.control.Key, target) {
		st.value = target
	}
}

func (h *HUD) drawTuning(screen *ebiten.Image) {
	face := basicfont.Face7x13
	left := h.panelLeft()
	height := tuningTop + len(h.controls)*lineHeight + panelPadding
	vector.FillRect(screen, float32(left), 0, tuningWidth, float32(height), modalColor, false)
	text.Draw(screen, "Tuning", face, left+panelPadding, panelPadding+headerBaseline, textColor)
	if len(h.controls) == 0 {
		text.Draw(screen, "No adjustable parameters", face, left+panelPadding, tuningTop+labelBaseline, dimTextColor)
		return
	}
	for _, st := range h.controls {
		text.Draw(screen, st.control.Label, face, left+panelPadding, st.top+labelBaseline, textColor)
		value := "--"
		if st.hasValue {
			value = formatStep(st.control.Step, st.value)
		}
		vw := text.BoundString(face, value).Dx()
		text.Draw(screen, value, face, st.minusRect.Min.X-buttonGap-vw, st.top+labelBaseline, neonTextColor)
		drawButton(screen, st.minusRect, "-", st.hasValue && st.value > st.control.Min)
		drawButton(screen, st.plusRect, "+", st.hasValue && st.value < st.control.Max)
	}
}

func drawButton(screen *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, textColor
	if !enabled {
		bg, fg = disabledColor, dimTextColor
	}
	vector.FillRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)
	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(screen, label, face, x, y, fg)
}

// formatStep prints v with as many decimals as the control step needs.
func formatStep(step, v float64) string {
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func pointerJustPressed() (bool, int, int) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		return true, x, y
	}
	return false, 0, 0
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

var (
	textColor     = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	dimTextColor  = color.RGBA{R: 130, G: 130, B: 145, A: 255}
	neonTextColor = color.RGBA{R: 0x00, G: 0xf2, B: 0xff, A: 255}
	modalColor    = color.RGBA{R: 16, G: 16, B: 22, A: 230}
	buttonColor   = color.RGBA{R: 0, G: 90, B: 100, A: 255}
	disabledColor = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

const (
	panelPadding   = 12
	headerBaseline = 14
	lineGap        = 18
	labelBaseline  = 22
	lineHeight     = 34
	buttonSize     = 22
	buttonGap      = 6
	buttonW        = 120
	buttonH        = 30
	modalW         = 360
	modalH         = 160
	tuningWidth    = 260
	tuningTop      = panelPadding + headerBaseline + 14
)
