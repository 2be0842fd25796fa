package crop

// SelectionState enumerates the states of the selection tracker.
type SelectionState int

const (
	StateIdle    SelectionState = iota // no rectangle
	StateDrawing                       // anchor set, endpoint follows drags
)

func (s SelectionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawing:
		return "drawing"
	default:
		return "unknown"
	}
}

// EventKind enumerates the pointer events the tracker understands.
type EventKind int

const (
	EventPress EventKind = iota // button pressed: start a new selection
	EventDrag                   // pointer moved with button held
	EventReset                  // image replaced: drop the selection
)

func (k EventKind) String() string {
	switch k {
	case EventPress:
		return "press"
	case EventDrag:
		return "drag"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// SelectionEvent is a pointer event in display coordinates.
type SelectionEvent struct {
	Kind EventKind
	X, Y int
}

// Press builds an EventPress at (x, y).
func Press(x, y int) SelectionEvent { return SelectionEvent{Kind: EventPress, X: x, Y: y} }

// Drag builds an EventDrag at (x, y).
func Drag(x, y int) SelectionEvent { return SelectionEvent{Kind: EventDrag, X: x, Y: y} }

// Reset builds an EventReset.
func Reset() SelectionEvent { return SelectionEvent{Kind: EventReset} }

// SelectionListener is called on every state transition, including Drawing -> Drawing
// when a new press replaces the previous rectangle.
type SelectionListener func(prev, next SelectionState)

// Tracker is the selection state machine. It is not safe for concurrent use; all
// events are expected to arrive on the UI thread. The zero value is Idle and usable.
type Tracker struct {
	state     SelectionState
	rect      SelectionRect
	listeners []SelectionListener
}

// NewTracker returns an idle tracker.
func NewTracker() *Tracker { return &Tracker{} }

// OnChange registers a transition listener.
func (t *Tracker) OnChange(l SelectionListener) {
	if t == nil || l == nil {
		return
	}
	t.listeners = append(t.listeners, l)
}

// Current returns the current state.
func (t *Tracker) Current() SelectionState {
	if t == nil {
		return StateIdle
	}
	return t.state
}

// Handle applies ev and reports whether the rectangle changed.
func (t *Tracker) Handle(ev SelectionEvent) bool {
	if t == nil {
		return false
	}
	switch ev.Kind {
	case EventPress:
		// the old rectangle is replaced before any drag is accepted
		t.rect = SelectionRect{X0: ev.X, Y0: ev.Y, X1: ev.X, Y1: ev.Y}
		t.transition(StateDrawing)
		return true
	case EventDrag:
		if t.state != StateDrawing {
			return false
		}
		if t.rect.X1 == ev.X && t.rect.Y1 == ev.Y {
			return false
		}
		t.rect.X1, t.rect.Y1 = ev.X, ev.Y
		return true
	case EventReset:
		if t.state == StateIdle {
			return false
		}
		t.rect = SelectionRect{}
		t.transition(StateIdle)
		return true
	}
	return false
}

// Selection returns a copy of the current rectangle, or false when Idle.
func (t *Tracker) Selection() (*SelectionRect, bool) {
	if t == nil || t.state != StateDrawing {
		return nil, false
	}
	r := t.rect
	return &r, true
}

func (t *Tracker) transition(next SelectionState) {
	prev := t.state
	t.state = next
	for _, l := range t.listeners {
		l(prev, next)
	}
}
