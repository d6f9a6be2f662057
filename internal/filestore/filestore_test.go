package filestore

import (
	"context"
	"testing"

	"mochi/internal/schedule"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestKeyTransformRoundTrip(t *testing.T) {
	keys := []string{
		"items/2f1e0a9c-1111-2222-3333-444455556666",
		"templates/tpl-study",
		"users/user-1",
	}
	for _, k := range keys {
		pk := keyToPath(k)
		if got := pathToKey(pk); got != k {
			t.Errorf("transform round trip of %q = %q", k, got)
		}
	}
}

func TestItemRoundTripKeepsOrder(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	var want []string
	for i, title := range []string{"学习", "工作", "运动"} {
		block, err := schedule.NewBlock("user-1", "tpl-study", title, "#60a5fa", 420+i*60, 60, i, "2026-03-02")
		if err != nil {
			t.Fatalf("NewBlock returned error: %v", err)
		}
		if err := s.PutItems(ctx, *block); err != nil {
			t.Fatalf("PutItems returned error: %v", err)
		}
		want = append(want, block.ID)
	}

	items, err := s.ListItems(ctx)
	if err != nil {
		t.Fatalf("ListItems returned error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("ListItems returned %d items, want 3", len(items))
	}
	for i, id := range want {
		if items[i].ID != id {
			t.Errorf("position %d holds %s, want %s (insertion order)", i, items[i].ID, id)
		}
	}
}

func TestPutItemsReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	a, _ := schedule.NewBlock("user-1", "tpl-study", "学习", "#60a5fa", 420, 60, 0, "2026-03-02")
	b, _ := schedule.NewBlock("user-1", "tpl-work", "工作", "#f59e0b", 540, 120, 1, "2026-03-02")
	if err := s.PutItems(ctx, *a, *b); err != nil {
		t.Fatalf("PutItems returned error: %v", err)
	}

	a.StartTime = 480
	if err := s.PutItems(ctx, *a); err != nil {
		t.Fatalf("replacing PutItems returned error: %v", err)
	}

	items, err := s.ListItems(ctx)
	if err != nil {
		t.Fatalf("ListItems returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("ListItems returned %d items, want 2", len(items))
	}
	if items[0].ID != a.ID || items[0].StartTime != 480 {
		t.Errorf("replaced item lost its position or geometry: %+v", items[0])
	}
}

func TestDeleteItem(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	a, _ := schedule.NewBlock("user-1", "tpl-study", "学习", "#60a5fa", 420, 60, 0, "2026-03-02")
	if err := s.PutItems(ctx, *a); err != nil {
		t.Fatalf("PutItems returned error: %v", err)
	}
	if err := s.DeleteItem(ctx, a.ID); err != nil {
		t.Fatalf("DeleteItem returned error: %v", err)
	}
	items, err := s.ListItems(ctx)
	if err != nil {
		t.Fatalf("ListItems returned error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("ListItems returned %d items, want 0", len(items))
	}
	if err := s.DeleteItem(ctx, "missing"); err != nil {
		t.Errorf("deleting absent id returned error: %v", err)
	}
}

func TestTemplatesAndUsers(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

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
		t.Fatalf("ListTemplates returned %d, want %d", len(templates), len(schedule.BuiltinTemplates()))
	}
	if templates[0].ID != schedule.BuiltinTemplates()[0].ID {
		t.Error("templates should come back in insertion order")
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
