// Package gesture implements the drag interactions of the planner grid:
// moving and resizing blocks, dragging markers, and dropping templates.
// A Controller owns at most one drag session at a time and subscribes to
// pointer events only for the session's lifetime.
package gesture

// PointerEvent is a pointer position in grid pixel space. X grows across
// day columns, Y grows downward at one pixel per minute. Ctrl carries the
// duplicate modifier held at release.
type PointerEvent struct {
	X, Y float64
	Ctrl bool
}

// Events fans pointer move/up events out to the current subscribers. The
// planner is single-threaded, so no locking is done here.
type Events struct {
	nextID int
	subs   map[int]subscriber
}

type subscriber struct {
	onMove func(PointerEvent)
	onUp   func(PointerEvent)
}

// NewEvents creates an empty dispatcher.
func NewEvents() *Events {
	return &Events{subs: make(map[int]subscriber)}
}

// Subscribe registers handlers and returns a release function. Release is
// idempotent; handlers registered twice are invoked twice.
func (e *Events) Subscribe(onMove, onUp func(PointerEvent)) func() {
	id := e.nextID
	e.nextID++
	e.subs[id] = subscriber{onMove: onMove, onUp: onUp}

	released := false
	return func() {
		if released {
			return
		}
		released = true
		delete(e.subs, id)
	}
}

// Move dispatches a pointer-move event to all subscribers.
func (e *Events) Move(ev PointerEvent) {
	for _, s := range e.subs {
		if s.onMove != nil {
			s.onMove(ev)
		}
	}
}

// Up dispatches a pointer-up event to all subscribers.
func (e *Events) Up(ev PointerEvent) {
	for _, s := range e.subs {
		if s.onUp != nil {
			s.onUp(ev)
		}
	}
}

// Subscribers returns the number of live subscriptions.
func (e *Events) Subscribers() int { return len(e.subs) }
