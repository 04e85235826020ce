package swing

import "fmt"

// HighScoreKey is the store key the best distance is persisted under.
const HighScoreKey = "rope-high-score"

// ScoreStore persists the high score between runs. Implementations may fail;
// the session degrades to session-only scoring when they do.
type ScoreStore interface {
	Load(key string) (int, error)
	Save(key string, value int) error
}

// EventKind enumerates session notifications.
type EventKind uint8

const (
	EventStatus EventKind = iota
	EventScore
	EventHighScore
	EventCommentary
	EventAttach
	EventDetach
)

var eventNames = [...]string{
	EventStatus:     "status",
	EventScore:      "score",
	EventHighScore:  "high_score",
	EventCommentary: "commentary",
	EventAttach:     "attach",
	EventDetach:     "detach",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// MarshalText encodes the kind by name.
func (k EventKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText decodes a kind name.
func (k *EventKind) UnmarshalText(b []byte) error {
	for i, name := range eventNames {
		if name == string(b) {
			*k = EventKind(i)
			return nil
		}
	}
	return fmt.Errorf("swing: unknown event kind %q", b)
}

// Event is a change notification for UI surfaces. Every event carries the
// full set of presentation values so consumers need no other state.
type Event struct {
	Kind       EventKind `json:"kind"`
	Status     Status    `json:"status"`
	Score      int       `json:"score"`
	HighScore  int       `json:"high_score"`
	Commentary string    `json:"commentary"`
	Anchor     AnchorID  `json:"anchor,omitempty"`
}

// Notifier receives session change notifications synchronously on the tick
// goroutine. Implementations must not block.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Event)

// Notify calls f(e).
func (f NotifierFunc) Notify(e Event) { f(e) }

// Notifiers fans an event out to several notifiers in order.
type Notifiers []Notifier

// Notify forwards e to every non-nil notifier.
func (ns Notifiers) Notify(e Event) {
	for _, n := range ns {
		if n != nil {
			n.Notify(e)
		}
	}
}
