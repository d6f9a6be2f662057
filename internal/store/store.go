// Package store keeps the working set of planner data in memory and writes
// every change through to a Repository. Views hand out copies in stable
// insertion order so gesture snapping and rendering stay deterministic.
package store

import (
	"context"
	"fmt"

	"mochi/internal/gesture"
	"mochi/internal/marker"
	"mochi/internal/schedule"
)

// Store is the single source of truth while the planner runs.
type Store struct {
	repo  schedule.Repository
	items map[string]*schedule.Item
	order []string

	templates []schedule.Template
	users     []schedule.User
}

// Open loads the full working set from the repository, seeding templates
// and users on first run.
func Open(ctx context.Context, repo schedule.Repository) (*Store, error) {
	s := &Store{
		repo:  repo,
		items: make(map[string]*schedule.Item),
	}

	items, err := repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	for i := range items {
		s.insert(items[i])
	}

	s.templates, err = repo.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}
	if len(s.templates) == 0 {
		s.templates = schedule.BuiltinTemplates()
		for _, t := range s.templates {
			if err := repo.PutTemplate(ctx, t); err != nil {
				return nil, fmt.Errorf("seeding template %s: %w", t.ID, err)
			}
		}
	}

	s.users, err = repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}
	if len(s.users) == 0 {
		s.users = schedule.DefaultUsers()
		for _, u := range s.users {
			if err := repo.PutUser(ctx, u); err != nil {
				return nil, fmt.Errorf("seeding user %s: %w", u.ID, err)
			}
		}
	}

	return s, nil
}

func (s *Store) insert(item schedule.Item) {
	if _, exists := s.items[item.ID]; !exists {
		s.order = append(s.order, item.ID)
	}
	copied := item
	s.items[item.ID] = &copied
}

// Items returns every item in insertion order.
func (s *Store) Items() []schedule.Item {
	out := make([]schedule.Item, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.items[id])
	}
	return out
}

// Get returns an item by ID.
func (s *Store) Get(id string) (schedule.Item, bool) {
	it, ok := s.items[id]
	if !ok {
		return schedule.Item{}, false
	}
	return *it, true
}

// WeekItems returns a user's items for one week, in insertion order.
func (s *Store) WeekItems(userID, weekID string) []schedule.Item {
	var out []schedule.Item
	for _, id := range s.order {
		it := s.items[id]
		if it.UserID == userID && it.WeekID == weekID {
			out = append(out, *it)
		}
	}
	return out
}

// DayBlocks returns a user's blocks for one day column, markers excluded.
// This is the sibling set used for magnetic snapping.
func (s *Store) DayBlocks(userID, weekID string, day int) []schedule.Item {
	var out []schedule.Item
	for _, id := range s.order {
		it := s.items[id]
		if it.UserID == userID && it.WeekID == weekID && it.DayIndex == day && it.IsBlock() {
			out = append(out, *it)
		}
	}
	return out
}

// Marker returns the wake or sleep marker of a day, if present.
func (s *Store) Marker(userID, weekID string, day int, mt schedule.MarkerType) (schedule.Item, bool) {
	for _, id := range s.order {
		it := s.items[id]
		if it.UserID == userID && it.WeekID == weekID && it.DayIndex == day &&
			it.IsMarker() && it.MarkerType == mt {
			return *it, true
		}
	}
	return schedule.Item{}, false
}

// SleepSummary returns the rendered sleep-duration label for a day, pairing
// its wake marker with the previous day's sleep marker. Empty when either
// marker is missing or the duration is implausible.
func (s *Store) SleepSummary(userID, weekID string, day int) string {
	wake, ok := s.Marker(userID, weekID, day, schedule.MarkerWake)
	if !ok {
		return ""
	}
	sleep, ok := s.Marker(userID, weekID, marker.PrevDay(day), schedule.MarkerSleep)
	if !ok {
		return ""
	}
	return marker.DurationText(marker.SleepDuration(sleep.StartTime, wake.StartTime))
}

// Add inserts a new item and persists it.
func (s *Store) Add(ctx context.Context, item schedule.Item) error {
	s.insert(item)
	if err := s.repo.PutItems(ctx, item); err != nil {
		return fmt.Errorf("persisting item %s: %w", item.ID, err)
	}
	return nil
}

// AddAll inserts a batch of items and persists them together.
func (s *Store) AddAll(ctx context.Context, items []schedule.Item) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		s.insert(items[i])
	}
	if err := s.repo.PutItems(ctx, items...); err != nil {
		return fmt.Errorf("persisting %d items: %w", len(items), err)
	}
	return nil
}

// Update applies patch to an item and persists the result.
func (s *Store) Update(ctx context.Context, id string, patch func(*schedule.Item)) error {
	it, ok := s.items[id]
	if !ok {
		return schedule.ErrNotFound
	}
	patch(it)
	if err := s.repo.PutItems(ctx, *it); err != nil {
		return fmt.Errorf("persisting item %s: %w", id, err)
	}
	return nil
}

// SetLive replaces an item's geometry in memory without persisting. Used
// for intermediate gesture states; the commit persists the final shape.
func (s *Store) SetLive(item schedule.Item) {
	if it, ok := s.items[item.ID]; ok {
		*it = item
	}
}

// Delete removes an item from memory and the repository.
func (s *Store) Delete(ctx context.Context, id string) error {
	it, ok := s.items[id]
	if !ok {
		return schedule.ErrNotFound
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if err := s.repo.DeleteItem(ctx, it.ID); err != nil {
		return fmt.Errorf("deleting item %s: %w", id, err)
	}
	return nil
}

// CycleCompletion advances a block's completion 0 -> 50 -> 100 -> 0.
// Markers are left alone.
func (s *Store) CycleCompletion(ctx context.Context, id string) error {
	it, ok := s.items[id]
	if !ok {
		return schedule.ErrNotFound
	}
	if it.IsMarker() {
		return nil
	}
	next := 0
	switch {
	case it.Completion < 50:
		next = 50
	case it.Completion < 100:
		next = 100
	}
	return s.Update(ctx, id, func(i *schedule.Item) { i.Completion = next })
}

// Apply folds a finished gesture into the store.
func (s *Store) Apply(ctx context.Context, r gesture.Result) error {
	switch r.Kind {
	case gesture.CommitNone:
		return nil
	case gesture.CommitUpdate:
		return s.Update(ctx, r.Item.ID, func(i *schedule.Item) { *i = r.Item })
	case gesture.CommitDuplicate:
		return s.Add(ctx, r.Item)
	default:
		return fmt.Errorf("unknown commit kind %d", r.Kind)
	}
}

// EnsureMarkers seeds the default wake/sleep markers for a week that has
// none. Weeks with any marker are left untouched.
func (s *Store) EnsureMarkers(ctx context.Context, userID, weekID string) error {
	for _, id := range s.order {
		it := s.items[id]
		if it.UserID == userID && it.WeekID == weekID && it.IsMarker() {
			return nil
		}
	}
	return s.AddAll(ctx, marker.Seed(userID, weekID))
}

// AdvanceWeek copies a user's recurring items from one week into the next,
// with fresh IDs and completion reset. Seeded wake/sleep markers in the
// target week do not block the copy; only existing blocks do, so revisiting
// a week never duplicates. The returned count covers blocks only.
func (s *Store) AdvanceWeek(ctx context.Context, userID, fromWeekID string) (string, int, error) {
	toWeekID, err := schedule.AddWeeks(fromWeekID, 1)
	if err != nil {
		return "", 0, err
	}
	hasMarkers := false
	for _, it := range s.WeekItems(userID, toWeekID) {
		if it.IsBlock() {
			return toWeekID, 0, nil
		}
		hasMarkers = true
	}

	var copies []schedule.Item
	copied := 0
	for _, it := range s.WeekItems(userID, fromWeekID) {
		if !it.IsRecurring {
			continue
		}
		if it.IsMarker() && hasMarkers {
			continue
		}
		if it.IsBlock() {
			copied++
		}
		copies = append(copies, *it.CopyToWeek(toWeekID))
	}
	if err := s.AddAll(ctx, copies); err != nil {
		return "", 0, err
	}
	return toWeekID, copied, nil
}

// Templates returns the sticker templates.
func (s *Store) Templates() []schedule.Template {
	out := make([]schedule.Template, len(s.templates))
	copy(out, s.templates)
	return out
}

// AddTemplate stores a new sticker template.
func (s *Store) AddTemplate(ctx context.Context, t schedule.Template) error {
	s.templates = append(s.templates, t)
	if err := s.repo.PutTemplate(ctx, t); err != nil {
		return fmt.Errorf("persisting template %s: %w", t.ID, err)
	}
	return nil
}

// DeleteTemplate removes a sticker template. Existing items stamped from it
// keep their data.
func (s *Store) DeleteTemplate(ctx context.Context, id string) error {
	for i, t := range s.templates {
		if t.ID == id {
			s.templates = append(s.templates[:i], s.templates[i+1:]...)
			if err := s.repo.DeleteTemplate(ctx, id); err != nil {
				return fmt.Errorf("deleting template %s: %w", id, err)
			}
			return nil
		}
	}
	return schedule.ErrNotFound
}

// Users returns the planner profiles.
func (s *Store) Users() []schedule.User {
	out := make([]schedule.User, len(s.users))
	copy(out, s.users)
	return out
}

// User returns a profile by ID.
func (s *Store) User(id string) (schedule.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return schedule.User{}, false
}

// Close releases the underlying repository.
func (s *Store) Close() error {
	return s.repo.Close()
}
