package swing

import (
	"fmt"
	"log"

	"ropeswing/internal/core"
)

// Status is the game state machine's current state.
type Status uint8

const (
	StatusStart Status = iota
	StatusPlaying
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusStart:
		return "START"
	case StatusPlaying:
		return "PLAYING"
	case StatusGameOver:
		return "GAMEOVER"
	default:
		return "UNKNOWN"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes a status name.
func (s *Status) UnmarshalText(b []byte) error {
	for _, c := range []Status{StatusStart, StatusPlaying, StatusGameOver} {
		if c.String() == string(b) {
			*s = c
			return nil
		}
	}
	return fmt.Errorf("swing: unknown status %q", b)
}

// Command is a discrete input event.
type Command uint8

const (
	CommandTap Command = iota
	CommandStart
	CommandRestart
)

// Rope is the active attachment: a weak reference to an anchor by id and the
// swing radius captured when it was attached.
type Rope struct {
	Anchor AnchorID `json:"anchor"`
	Length float64  `json:"length"`
}

// Session owns all simulation state for the single live game. It is not safe
// for concurrent use; frontends with an input thread must queue commands and
// apply them from the goroutine that calls Step.
type Session struct {
	params   Params
	viewport core.Size

	rng    *core.RNG
	body   Body
	field  Field
	camera Camera
	scorer Scorer

	rope     Rope
	attached bool

	status     Status
	highScore  int
	commentary string
	tick       uint64

	store    ScoreStore
	notifier Notifier
	logger   *log.Logger
}

// New creates a session in the START state and loads the stored high score.
// An empty viewport falls back to the default size.
func New(cfg Config) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	viewport := cfg.Viewport
	if viewport.Empty() {
		viewport = DefaultConfig().Viewport
	}
	s := &Session{
		params:   cfg.Params,
		viewport: viewport,
		store:    cfg.Store,
		notifier: cfg.Notifier,
		logger:   logger,
	}
	s.highScore = s.loadHighScore()
	s.Reset(cfg.Seed)
	return s
}

// Name identifies the simulation.
func (s *Session) Name() string { return "ropeswing" }

// Reset reseeds the random source and returns to the START state. The high
// score survives.
func (s *Session) Reset(seed int64) {
	s.rng = core.NewRNG(seed)
	s.body = Body{Pos: s.params.StartPos, Prev: s.params.StartPrev}
	s.field = Field{}
	s.camera = Camera{}
	s.scorer = Scorer{}
	s.rope = Rope{}
	s.attached = false
	s.tick = 0
	s.status = StatusStart
	s.commentary = introCommentary
	s.emit(EventStatus, 0)
	s.emit(EventCommentary, 0)
}

// Handle applies a discrete input. Commands that do not apply to the current
// status are ignored; Handle reports whether anything changed.
func (s *Session) Handle(cmd Command) bool {
	switch cmd {
	case CommandTap:
		return s.Tap()
	case CommandStart:
		return s.Start()
	case CommandRestart:
		return s.Restart()
	default:
		return false
	}
}

// Start begins the first game. It only applies in START.
func (s *Session) Start() bool {
	if s.status != StatusStart {
		return false
	}
	s.begin()
	return true
}

// Restart begins a new game after a game over. It only applies in GAMEOVER.
func (s *Session) Restart() bool {
	if s.status != StatusGameOver {
		return false
	}
	s.begin()
	return true
}

func (s *Session) begin() {
	p := s.params
	s.body = Body{Pos: p.StartPos, Prev: p.StartPrev}
	s.rope = Rope{}
	s.attached = false
	s.camera = Camera{}
	s.field.Seed(s.rng, p)
	s.scorer = Scorer{}
	s.tick = 0
	s.status = StatusPlaying
	s.commentary = startCommentary
	s.emit(EventScore, 0)
	s.emit(EventCommentary, 0)
	s.emit(EventStatus, 0)
}

// Tap attaches to the nearest anchor ahead, or detaches when already
// attached. It is a no-op outside PLAYING and when nothing lies ahead.
func (s *Session) Tap() bool {
	if s.status != StatusPlaying {
		return false
	}
	if s.attached {
		id := s.rope.Anchor
		s.rope = Rope{}
		s.attached = false
		s.emit(EventDetach, id)
		return true
	}
	a, ok := s.field.NearestAhead(s.body.Pos.X)
	if !ok {
		return false
	}
	s.rope = Rope{Anchor: a.ID, Length: s.body.Pos.Dist(a.Pos)}
	s.attached = true
	s.emit(EventAttach, a.ID)
	return true
}

// Step advances the game by one tick: integrate, constrain, follow with the
// camera, extend and prune anchors, score, then check bounds.
func (s *Session) Step() {
	if s.status != StatusPlaying {
		return
	}
	p := s.params
	s.tick++

	s.body.Integrate(p.Gravity, p.Damping)
	if s.attached {
		if a, ok := s.field.Lookup(s.rope.Anchor); ok {
			s.body.Constrain(a.Pos, s.rope.Length)
		} else {
			s.logger.Printf("ropeswing: attached anchor %d no longer resident, detaching", s.rope.Anchor)
			id := s.rope.Anchor
			s.rope = Rope{}
			s.attached = false
			s.emit(EventDetach, id)
		}
	}

	s.camera.Follow(s.body.Pos.X, p.CameraLead, p.CameraSmooth)

	s.field.Extend(s.body.Pos.X, s.rng, p)
	s.field.Prune(p.PruneAbove, p.PruneKeep, s.rope.Anchor, s.attached)

	if s.scorer.Observe(s.body.Pos.X, p.ScoreScale) {
		s.emit(EventScore, 0)
	}

	if s.outOfBounds() {
		s.gameOver()
	}
}

func (s *Session) outOfBounds() bool {
	y := s.body.Pos.Y
	return y > float64(s.viewport.H)+s.params.FloorMargin || y < -s.params.CeilingMargin
}

func (s *Session) gameOver() {
	s.status = StatusGameOver
	score := s.scorer.Value
	if score > s.highScore {
		s.highScore = score
		s.saveHighScore(score)
		s.emit(EventHighScore, 0)
	}
	s.commentary = gameOverCommentary[s.rng.IntN(len(gameOverCommentary))]
	s.logger.Printf("ropeswing: game over at distance %dm after %d ticks (seed %d)", score, s.tick, s.rng.Seed())
	s.emit(EventCommentary, 0)
	s.emit(EventStatus, 0)
}

func (s *Session) loadHighScore() int {
	if s.store == nil {
		return 0
	}
	v, err := s.store.Load(HighScoreKey)
	if err != nil {
		s.logger.Printf("ropeswing: high score unavailable: %v", err)
		return 0
	}
	if v < 0 {
		return 0
	}
	return v
}

func (s *Session) saveHighScore(v int) {
	if s.store == nil {
		return
	}
	if err := s.store.Save(HighScoreKey, v); err != nil {
		s.logger.Printf("ropeswing: high score not saved: %v", err)
	}
}

func (s *Session) emit(kind EventKind, anchor AnchorID) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(Event{
		Kind:       kind,
		Status:     s.status,
		Score:      s.scorer.Value,
		HighScore:  s.highScore,
		Commentary: s.commentary,
		Anchor:     anchor,
	})
}

// SetViewport updates the dimensions used by the bounds check. The
// simulation state is left untouched.
func (s *Session) SetViewport(size core.Size) {
	if size.Empty() {
		return
	}
	s.viewport = size
}

// Viewport returns the current viewport dimensions.
func (s *Session) Viewport() core.Size { return s.viewport }

func (s *Session) Status() Status     { return s.status }
func (s *Session) Score() int         { return s.scorer.Value }
func (s *Session) HighScore() int     { return s.highScore }
func (s *Session) Commentary() string { return s.commentary }
func (s *Session) Body() Body         { return s.body }
func (s *Session) Camera() Camera     { return s.camera }
func (s *Session) Tick() uint64       { return s.tick }
func (s *Session) Seed() int64        { return s.rng.Seed() }
func (s *Session) Anchors() []Anchor  { return s.field.Anchors() }

// Rope returns the active attachment, if any.
func (s *Session) Rope() (Rope, bool) { return s.rope, s.attached }

// Params returns a copy of the active tuning.
func (s *Session) Params() Params { return s.params }
