// Package schedule defines the core domain types for the weekly planner:
// items placed on the 7-day grid, templates they are stamped from, and the
// users whose weeks they belong to.
package schedule

import (
	"errors"

	"github.com/google/uuid"
)

// Grid constants. The day column covers 05:00 through 05:00 the next
// morning, so late-night entries stay on the day they belong to.
const (
	HoursStart    = 5  // first visible hour of a day column
	HoursEnd      = 29 // exclusive end, 29 = 05:00 next day
	PixelsPerHour = 60 // vertical scale: one pixel per minute
	SnapMinutes   = 15 // grid snapping granularity
	MinDuration   = 15 // shortest allowed block, in minutes

	MinutesPerDay = 24 * 60
	DaysPerWeek   = 7
)

var (
	// ErrEmptyTitle is returned when an item has no title.
	ErrEmptyTitle = errors.New("item title cannot be empty")

	// ErrInvalidDay is returned when a day index is outside 0..6.
	ErrInvalidDay = errors.New("day index must be between 0 and 6")

	// ErrDurationTooShort is returned when a block is shorter than MinDuration.
	ErrDurationTooShort = errors.New("duration is below the minimum block size")

	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")
)

// ItemType distinguishes draggable blocks from day markers.
type ItemType string

const (
	TypeBlock  ItemType = "block"
	TypeMarker ItemType = "marker"
)

// MarkerType identifies the two per-day markers.
type MarkerType string

const (
	MarkerWake  MarkerType = "wake"
	MarkerSleep MarkerType = "sleep"
)

// Item is a single entry on the weekly grid: either a sticker block with a
// duration, or a wake/sleep marker pinned to a day.
type Item struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	TemplateID string `json:"templateId"`
	Title      string `json:"title"`
	Color      string `json:"color"`

	// StartTime is minutes from midnight. It may exceed 1440 for entries in
	// the extended 24:00-29:00 region of the grid.
	StartTime int `json:"startTime"`
	Duration  int `json:"duration"`
	DayIndex  int `json:"dayIndex"` // 0 = Monday .. 6 = Sunday
	WeekID    string `json:"weekId"`

	// Completion is 0-100. Markers always keep 0.
	Completion int `json:"completion"`

	IsRecurring      bool       `json:"isRecurring"`
	Type             ItemType   `json:"type"`
	MarkerType       MarkerType `json:"markerType,omitempty"`
	ExcludeFromStats bool       `json:"excludeFromStats,omitempty"`
}

// NewBlock creates a validated sticker block with a fresh ID.
func NewBlock(userID, templateID, title, color string, start, duration, day int, weekID string) (*Item, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if day < 0 || day >= DaysPerWeek {
		return nil, ErrInvalidDay
	}
	if duration < MinDuration {
		return nil, ErrDurationTooShort
	}
	return &Item{
		ID:         uuid.NewString(),
		UserID:     userID,
		TemplateID: templateID,
		Title:      title,
		Color:      color,
		StartTime:  start,
		Duration:   duration,
		DayIndex:   day,
		WeekID:     weekID,
		Type:       TypeBlock,
	}, nil
}

// NewMarker creates a wake or sleep marker for the given day.
func NewMarker(userID string, mt MarkerType, start, day int, weekID string) *Item {
	title := "起床"
	templateID := TemplateWake
	if mt == MarkerSleep {
		title = "睡觉"
		templateID = TemplateSleep
	}
	return &Item{
		ID:          uuid.NewString(),
		UserID:      userID,
		TemplateID:  templateID,
		Title:       title,
		StartTime:   start,
		Duration:    0,
		DayIndex:    day,
		WeekID:      weekID,
		IsRecurring: true,
		Type:        TypeMarker,
		MarkerType:  mt,
	}
}

// IsBlock reports whether the item is a draggable sticker block.
func (i *Item) IsBlock() bool { return i.Type != TypeMarker }

// IsMarker reports whether the item is a wake or sleep marker.
func (i *Item) IsMarker() bool { return i.Type == TypeMarker }

// End returns the end minute of the item (start for zero-duration markers).
func (i *Item) End() int { return i.StartTime + i.Duration }

// Duplicate returns a copy with a fresh ID and completion reset to zero.
func (i *Item) Duplicate() *Item {
	d := *i
	d.ID = uuid.NewString()
	d.Completion = 0
	return &d
}

// CopyToWeek returns a copy of the item re-homed to another week, with a
// fresh ID and completion reset. Used when recurring items roll forward.
func (i *Item) CopyToWeek(weekID string) *Item {
	d := i.Duplicate()
	d.WeekID = weekID
	return d
}
