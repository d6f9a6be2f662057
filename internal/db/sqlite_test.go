package db

import (
	"context"
	"path/filepath"
	"testing"

	"mochi/internal/schedule"
)

func openTestDB(t *testing.T) *SQLite {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "planner.db"))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestItemRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestDB(t)

	block, err := schedule.NewBlock("user-1", "tpl-study", "学习", "#60a5fa", 420, 60, 0, "2026-03-02")
	if err != nil {
		t.Fatalf("NewBlock returned error: %v", err)
	}
	block.Completion = 50
	marker := schedule.NewMarker("user-1", schedule.MarkerSleep, 1380, 3, "2026-03-02")

	if err := s.PutItems(ctx, *block, *marker); err != nil {
		t.Fatalf("PutItems returned error: %v", err)
	}

	items, err := s.ListItems(ctx)
	if err != nil {
		t.Fatalf("ListItems returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("ListItems returned %d items, want 2", len(items))
	}
	if items[0].ID != block.ID || items[1].ID != marker.ID {
		t.Error("ListItems should preserve insertion order")
	}
	if items[0].Completion != 50 || items[0].Title != "学习" {
		t.Errorf("block round trip lost data: %+v", items[0])
	}
	if items[1].MarkerType != schedule.MarkerSleep || !items[1].IsRecurring {
		t.Errorf("marker round trip lost data: %+v", items[1])
	}
}

func TestPutItemsUpserts(t *testing.T) {
	ctx := context.Background()
	s := openTestDB(t)

	block, err := schedule.NewBlock("user-1", "tpl-study", "学习", "#60a5fa", 420, 60, 0, "2026-03-02")
	if err != nil {
		t.Fatalf("NewBlock returned error: %v", err)
	}
	if err := s.PutItems(ctx, *block); err != nil {
		t.Fatalf("PutItems returned error: %v", err)
	}

	block.StartTime = 480
	block.Completion = 100
	if err := s.PutItems(ctx, *block); err != nil {
		t.Fatalf("second PutItems returned error: %v", err)
	}

	items, err := s.ListItems(ctx)
	if err != nil {
		t.Fatalf("ListItems returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("ListItems returned %d items, want 1 after upsert", len(items))
	}
	if items[0].StartTime != 480 || items[0].Completion != 100 {
		t.Errorf("upsert did not replace: %+v", items[0])
	}
}

func TestDeleteItem(t *testing.T) {
	ctx := context.Background()
	s := openTestDB(t)

	block, err := schedule.NewBlock("user-1", "tpl-study", "学习", "#60a5fa", 420, 60, 0, "2026-03-02")
	if err != nil {
		t.Fatalf("NewBlock returned error: %v", err)
	}
	if err := s.PutItems(ctx, *block); err != nil {
		t.Fatalf("PutItems returned error: %v", err)
	}

	if err := s.DeleteItem(ctx, block.ID); err != nil {
		t.Fatalf("DeleteItem returned error: %v", err)
	}
	items, err := s.ListItems(ctx)
	if err != nil {
		t.Fatalf("ListItems returned error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("ListItems returned %d items, want 0", len(items))
	}

	// Absent IDs are not an error.
	if err := s.DeleteItem(ctx, "missing"); err != nil {
		t.Errorf("deleting absent id returned error: %v", err)
	}
}

func TestTemplateAndUserRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestDB(t)

	for _, tpl := range schedule.BuiltinTemplates() {
		if err := s.PutTemplate(ctx, tpl); err != nil {
			t.Fatalf("PutTemplate returned error: %v", err)
		}
	}
	templates, err := s.ListTemplates(ctx)
	if err != nil {
		t.Fatalf("ListTemplates returned error: %v", err)
	}
	if len(templates) != len(schedule.BuiltinTemplates()) {
		t.Errorf("ListTemplates returned %d, want %d", len(templates), len(schedule.BuiltinTemplates()))
	}

	if err := s.DeleteTemplate(ctx, templates[0].ID); err != nil {
		t.Fatalf("DeleteTemplate returned error: %v", err)
	}
	templates, err = s.ListTemplates(ctx)
	if err != nil {
		t.Fatalf("ListTemplates returned error: %v", err)
	}
	if len(templates) != len(schedule.BuiltinTemplates())-1 {
		t.Errorf("template was not deleted")
	}

	for _, u := range schedule.DefaultUsers() {
		if err := s.PutUser(ctx, u); err != nil {
			t.Fatalf("PutUser returned error: %v", err)
		}
	}
	users, err := s.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if len(users) != len(schedule.DefaultUsers()) {
		t.Errorf("ListUsers returned %d, want %d", len(users), len(schedule.DefaultUsers()))
	}
}
