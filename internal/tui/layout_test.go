package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"mochi/internal/config"
	"mochi/internal/schedule"
	"mochi/internal/store"
)

// memRepo keeps everything in memory for TUI tests.
type memRepo struct {
	items     []schedule.Item
	templates []schedule.Template
	users     []schedule.User
}

func (r *memRepo) ListItems(ctx context.Context) ([]schedule.Item, error) {
	return append([]schedule.Item(nil), r.items...), nil
}

func (r *memRepo) PutItems(ctx context.Context, items ...schedule.Item) error {
	for _, it := range items {
		replaced := false
		for i := range r.items {
			if r.items[i].ID == it.ID {
				r.items[i] = it
				replaced = true
				break
			}
		}
		if !replaced {
			r.items = append(r.items, it)
		}
	}
	return nil
}

func (r *memRepo) DeleteItem(ctx context.Context, id string) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memRepo) ListTemplates(ctx context.Context) ([]schedule.Template, error) {
	return append([]schedule.Template(nil), r.templates...), nil
}

func (r *memRepo) PutTemplate(ctx context.Context, t schedule.Template) error {
	for i := range r.templates {
		if r.templates[i].ID == t.ID {
			r.templates[i] = t
			return nil
		}
	}
	r.templates = append(r.templates, t)
	return nil
}

func (r *memRepo) DeleteTemplate(ctx context.Context, id string) error {
	for i := range r.templates {
		if r.templates[i].ID == id {
			r.templates = append(r.templates[:i], r.templates[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memRepo) ListUsers(ctx context.Context) ([]schedule.User, error) {
	return append([]schedule.User(nil), r.users...), nil
}

func (r *memRepo) PutUser(ctx context.Context, u schedule.User) error {
	r.users = append(r.users, u)
	return nil
}

func (r *memRepo) Close() error { return nil }

func newTestModel(t *testing.T) *Model {
	t.Helper()
	st, err := store.Open(context.Background(), &memRepo{})
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	m := New(st, config.Default())
	m.width = 104 // hour label 6 + 7 columns of 14
	m.height = 40
	m.recalcLayout()
	return m
}

func addBlock(t *testing.T, m *Model, title string, day, start, duration int) schedule.Item {
	t.Helper()
	it, err := schedule.NewBlock(m.userID, "", title, "#89b4fa", start, duration, day, m.weekID)
	if err != nil {
		t.Fatalf("creating block: %v", err)
	}
	if err := m.store.Add(context.Background(), *it); err != nil {
		t.Fatalf("adding block: %v", err)
	}
	return *it
}

func TestRecalcLayout(t *testing.T) {
	m := newTestModel(t)
	if m.colWidth != 14 {
		t.Errorf("colWidth = %d, want 14", m.colWidth)
	}

	m.width = 20
	m.recalcLayout()
	if m.colWidth != minColWidth {
		t.Errorf("narrow colWidth = %d, want %d", m.colWidth, minColWidth)
	}
}

func TestDayAt(t *testing.T) {
	m := newTestModel(t)

	tests := []struct {
		name string
		x    int
		day  int
		ok   bool
	}{
		{"hour label column", 3, 0, false},
		{"first day", hourLabelWidth, 0, true},
		{"last cell of first day", hourLabelWidth + 13, 0, true},
		{"second day", hourLabelWidth + 14, 1, true},
		{"sunday", hourLabelWidth + 6*14, 6, true},
		{"past the grid", hourLabelWidth + 7*14, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, ok := m.dayAt(tt.x)
			if ok != tt.ok || (ok && day != tt.day) {
				t.Errorf("dayAt(%d) = %d, %v; want %d, %v", tt.x, day, ok, tt.day, tt.ok)
			}
		})
	}
}

func TestMinuteAt(t *testing.T) {
	m := newTestModel(t)

	// First grid row starts at the window's first minute, 05:00.
	minute, ok := m.minuteAt(headerLines)
	if !ok || minute != schedule.HoursStart*60 {
		t.Fatalf("minuteAt(first row) = %d, %v; want %d, true", minute, ok, schedule.HoursStart*60)
	}

	// One row down is one snap step later.
	minute, ok = m.minuteAt(headerLines + 1)
	if !ok || minute != schedule.HoursStart*60+minutesPerRow {
		t.Fatalf("minuteAt(second row) = %d, %v", minute, ok)
	}

	// Scrolling shifts the mapping.
	m.scrollOffset = 4
	minute, ok = m.minuteAt(headerLines)
	if !ok || minute != schedule.HoursStart*60+60 {
		t.Fatalf("minuteAt(scrolled) = %d, %v; want %d, true", minute, ok, schedule.HoursStart*60+60)
	}

	if _, ok := m.minuteAt(0); ok {
		t.Error("minuteAt(header row) should be out of the grid")
	}
}

func TestBlockAtPrefersTopmost(t *testing.T) {
	m := newTestModel(t)
	addBlock(t, m, "底层", 2, 540, 120)
	top := addBlock(t, m, "顶层", 2, 570, 30)

	got, ok := m.blockAt(2, 580)
	if !ok || got.ID != top.ID {
		t.Fatalf("blockAt = %q, %v; want the later block on top", got.Title, ok)
	}

	got, ok = m.blockAt(2, 540)
	if !ok || got.Title != "底层" {
		t.Fatalf("blockAt(outside overlap) = %q, %v", got.Title, ok)
	}

	if _, ok := m.blockAt(2, 660); ok {
		t.Error("blockAt past the block's end should find nothing")
	}
}

func TestIsResizeRow(t *testing.T) {
	it := schedule.Item{StartTime: 540, Duration: 60}

	if isResizeRow(it, 540) {
		t.Error("first row should move, not resize")
	}
	if isResizeRow(it, 570) {
		t.Error("middle row should move, not resize")
	}
	if !isResizeRow(it, 585) {
		t.Error("last row should resize")
	}
}

func TestMarkerAt(t *testing.T) {
	m := newTestModel(t)
	if err := m.store.EnsureMarkers(context.Background(), m.userID, m.weekID); err != nil {
		t.Fatalf("seeding markers: %v", err)
	}

	// Default wake is 07:00.
	mk, ok := m.markerAt(0, 420)
	if !ok || mk.MarkerType != schedule.MarkerWake {
		t.Fatalf("markerAt(420) = %v, %v; want wake marker", mk.MarkerType, ok)
	}

	if _, ok := m.markerAt(0, 435); ok {
		t.Error("row after the marker should be empty")
	}
}

func TestPointerEventY(t *testing.T) {
	m := newTestModel(t)
	m.scrollOffset = 2

	ev := m.pointerEvent(tea.MouseMsg{X: 10, Y: headerLines + 3})
	if ev.Y != float64((3+2)*minutesPerRow) {
		t.Errorf("Y = %v, want %v", ev.Y, float64((3+2)*minutesPerRow))
	}
	if ev.X != 10 {
		t.Errorf("X = %v, want 10", ev.X)
	}
}
