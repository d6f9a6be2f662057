package gesture

import (
	"errors"
	"fmt"

	"mochi/internal/grid"
	"mochi/internal/schedule"
)

// Mode identifies the kind of drag session in progress.
type Mode int

const (
	ModeMove Mode = iota
	ModeResize
	ModeMarkerDrag
)

// CommitKind classifies the outcome of a released session.
type CommitKind int

const (
	// CommitNone means the release changed nothing.
	CommitNone CommitKind = iota
	// CommitUpdate carries the item with its final geometry.
	CommitUpdate
	// CommitDuplicate carries a fresh copy at the release position; the
	// original item is untouched.
	CommitDuplicate
)

// ErrSessionActive is returned when Begin is called mid-session.
var ErrSessionActive = errors.New("a drag session is already active")

// Result is delivered to OnCommit when a session ends.
type Result struct {
	Kind CommitKind
	Item schedule.Item
}

// Config wires a Controller to its surroundings.
type Config struct {
	// ColWidth is the pixel width of one day column.
	ColWidth float64

	// Siblings returns the blocks of a day column in stored order,
	// markers excluded. Used for magnetic snapping.
	Siblings func(day int) []schedule.Item

	// OnLive receives intermediate geometry during resize and marker
	// drags. Move drags do not report live geometry; the view reads the
	// raw offset instead.
	OnLive func(schedule.Item)

	// OnCommit receives the outcome when the pointer is released.
	OnCommit func(Result)
}

// Controller runs drag sessions against an Events dispatcher.
type Controller struct {
	events *Events
	cfg    Config
	sess   *session
}

type session struct {
	orig           schedule.Item // snapshot at press
	item           schedule.Item // working copy, updated live
	mode           Mode
	startX, startY float64
	curX, curY     float64
	release        func()
}

// NewController creates a controller. Siblings and OnCommit must be set.
func NewController(events *Events, cfg Config) *Controller {
	return &Controller{events: events, cfg: cfg}
}

// Active reports whether a drag session is in progress.
func (c *Controller) Active() bool { return c.sess != nil }

// SetColWidth updates the day-column width, e.g. after a layout change.
func (c *Controller) SetColWidth(w float64) { c.cfg.ColWidth = w }

// Session returns the working item and mode of the active session.
func (c *Controller) Session() (schedule.Item, Mode, bool) {
	if c.sess == nil {
		return schedule.Item{}, 0, false
	}
	return c.sess.item, c.sess.mode, true
}

// Offset returns the raw pointer displacement since the press. The view
// derives the move ghost's destination from it.
func (c *Controller) Offset() (dx, dy float64) {
	if c.sess == nil {
		return 0, 0
	}
	return c.sess.curX - c.sess.startX, c.sess.curY - c.sess.startY
}

// Begin starts a drag session for item at the pressed position. Markers
// only support ModeMarkerDrag and blocks only ModeMove/ModeResize.
func (c *Controller) Begin(item schedule.Item, mode Mode, ev PointerEvent) error {
	if c.sess != nil {
		return ErrSessionActive
	}
	if item.IsMarker() != (mode == ModeMarkerDrag) {
		return fmt.Errorf("mode %d does not apply to item %q", mode, item.ID)
	}

	s := &session{
		orig:   item,
		item:   item,
		mode:   mode,
		startX: ev.X,
		startY: ev.Y,
		curX:   ev.X,
		curY:   ev.Y,
	}
	s.release = c.events.Subscribe(c.onMove, c.onUp)
	c.sess = s
	return nil
}

func (c *Controller) onMove(ev PointerEvent) {
	s := c.sess
	if s == nil {
		return
	}
	s.curX, s.curY = ev.X, ev.Y
	deltaY := ev.Y - s.startY

	switch s.mode {
	case ModeMove:
		// Raw offset only; snapping happens at release.

	case ModeResize:
		raw := float64(s.orig.Duration) + deltaY
		dur := grid.Snap(raw)
		if dur < schedule.MinDuration {
			dur = schedule.MinDuration
		}
		dur = grid.MagnetDuration(s.item.StartTime, dur, c.siblings(s.item.DayIndex), s.item.ID)
		if dur != s.item.Duration {
			s.item.Duration = dur
			c.live(s.item)
		}

	case ModeMarkerDrag:
		raw := float64(s.orig.StartTime) + deltaY
		start := grid.ClampStart(grid.Snap(raw))
		if start != s.item.StartTime {
			s.item.StartTime = start
			c.live(s.item)
		}
	}
}

func (c *Controller) onUp(ev PointerEvent) {
	s := c.sess
	if s == nil {
		return
	}
	s.release()
	c.sess = nil

	switch s.mode {
	case ModeResize, ModeMarkerDrag:
		if s.item == s.orig {
			c.commit(Result{Kind: CommitNone})
			return
		}
		c.commit(Result{Kind: CommitUpdate, Item: s.item})

	case ModeMove:
		deltaX := ev.X - s.startX
		deltaY := ev.Y - s.startY

		start := s.orig.StartTime
		day := s.orig.DayIndex
		if deltaX != 0 || deltaY != 0 {
			start = grid.Snap(float64(s.orig.StartTime) + deltaY)
			day = grid.ClampDay(s.orig.DayIndex + grid.DayOffset(deltaX, c.cfg.ColWidth))
			if day == s.orig.DayIndex {
				// Magnetic snapping only applies within the source column.
				start = grid.MagnetStart(start, s.orig.Duration, c.siblings(day), s.orig.ID)
			}
			start = grid.ClampStart(start)
		}

		// A copy release duplicates even without movement, so the modifier
		// check comes before the no-op guard.
		if ev.Ctrl {
			dup := s.orig
			dup.StartTime = start
			dup.DayIndex = day
			c.commit(Result{Kind: CommitDuplicate, Item: *dup.Duplicate()})
			return
		}

		if start == s.orig.StartTime && day == s.orig.DayIndex {
			c.commit(Result{Kind: CommitNone})
			return
		}

		item := s.orig
		item.StartTime = start
		item.DayIndex = day
		c.commit(Result{Kind: CommitUpdate, Item: item})
	}
}

func (c *Controller) siblings(day int) []schedule.Item {
	if c.cfg.Siblings == nil {
		return nil
	}
	return c.cfg.Siblings(day)
}

func (c *Controller) live(item schedule.Item) {
	if c.cfg.OnLive != nil {
		c.cfg.OnLive(item)
	}
}

func (c *Controller) commit(r Result) {
	if c.cfg.OnCommit != nil {
		c.cfg.OnCommit(r)
	}
}
