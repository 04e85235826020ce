package swing

import "ropeswing/internal/core"

// View is a read-only picture of the session for renderers. Anchors shares
// the session's backing array; use Clone before handing a View to another
// goroutine.
type View struct {
	Tick       uint64    `json:"tick"`
	Status     Status    `json:"status"`
	Body       Body      `json:"body"`
	Camera     float64   `json:"camera"`
	Anchors    []Anchor  `json:"anchors"`
	Rope       Rope      `json:"rope"`
	Attached   bool      `json:"attached"`
	Score      int       `json:"score"`
	HighScore  int       `json:"high_score"`
	Commentary string    `json:"commentary"`
	Viewport   core.Size `json:"viewport"`
}

// View captures the current state.
func (s *Session) View() View {
	return View{
		Tick:       s.tick,
		Status:     s.status,
		Body:       s.body,
		Camera:     s.camera.X,
		Anchors:    s.field.Anchors(),
		Rope:       s.rope,
		Attached:   s.attached,
		Score:      s.scorer.Value,
		HighScore:  s.highScore,
		Commentary: s.commentary,
		Viewport:   s.viewport,
	}
}

// Clone returns a View that owns its anchor slice.
func (v View) Clone() View {
	v.Anchors = append([]Anchor(nil), v.Anchors...)
	return v
}

// RopeAnchor resolves the attached anchor within the view.
func (v View) RopeAnchor() (Anchor, bool) {
	if !v.Attached {
		return Anchor{}, false
	}
	for _, a := range v.Anchors {
		if a.ID == v.Rope.Anchor {
			return a, true
		}
	}
	return Anchor{}, false
}
