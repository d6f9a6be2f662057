package stats

import (
	"testing"

	"mochi/internal/schedule"
)

func item(title string, duration, completion int) schedule.Item {
	return schedule.Item{
		Title: title, Duration: duration, Completion: completion,
		Type: schedule.TypeBlock,
	}
}

func TestSummarize(t *testing.T) {
	items := []schedule.Item{
		item("学习", 60, 100),
		item("学习", 60, 0),
		item("工作", 120, 50),
	}

	sum := Summarize(items)
	if sum.TotalItems != 3 {
		t.Errorf("TotalItems = %d, want 3", sum.TotalItems)
	}
	if sum.TotalMinutes != 240 {
		t.Errorf("TotalMinutes = %d, want 240", sum.TotalMinutes)
	}
	if sum.CompletedMinutes != 120 {
		t.Errorf("CompletedMinutes = %v, want 120", sum.CompletedMinutes)
	}
	if sum.CompletionRate() != 50 {
		t.Errorf("CompletionRate = %d, want 50", sum.CompletionRate())
	}
}

func TestSummarizeExcludesMarkersAndFlagged(t *testing.T) {
	items := []schedule.Item{
		item("学习", 60, 100),
		{Title: "起床", Type: schedule.TypeMarker, MarkerType: schedule.MarkerWake, StartTime: 420},
		{Title: "背景", Duration: 480, Type: schedule.TypeBlock, ExcludeFromStats: true},
	}

	sum := Summarize(items)
	if sum.TotalItems != 1 {
		t.Errorf("TotalItems = %d, want 1", sum.TotalItems)
	}
	if sum.TotalMinutes != 60 {
		t.Errorf("TotalMinutes = %d, want 60", sum.TotalMinutes)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	if sum.CompletionRate() != 0 {
		t.Errorf("empty CompletionRate = %d, want 0", sum.CompletionRate())
	}
	if len(sum.Groups) != 0 {
		t.Errorf("empty Groups length = %d, want 0", len(sum.Groups))
	}
}

func TestGroupsTopSixByMinutes(t *testing.T) {
	var items []schedule.Item
	titles := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for i, title := range titles {
		items = append(items, item(title, (i+1)*30, 0))
	}

	sum := Summarize(items)
	if len(sum.Groups) != TopBreakdown {
		t.Fatalf("Groups length = %d, want %d", len(sum.Groups), TopBreakdown)
	}
	if sum.Groups[0].Title != "h" {
		t.Errorf("largest group = %q, want %q", sum.Groups[0].Title, "h")
	}
	for i := 1; i < len(sum.Groups); i++ {
		if sum.Groups[i].Minutes > sum.Groups[i-1].Minutes {
			t.Error("groups must be sorted by minutes, descending")
		}
	}
	for _, g := range sum.Groups {
		if g.Title == "a" || g.Title == "b" {
			t.Errorf("group %q should have been cut from the top six", g.Title)
		}
	}
}

func TestGroupAggregation(t *testing.T) {
	items := []schedule.Item{
		item("学习", 60, 100),
		item("学习", 30, 50),
	}
	sum := Summarize(items)
	if len(sum.Groups) != 1 {
		t.Fatalf("Groups length = %d, want 1", len(sum.Groups))
	}
	g := sum.Groups[0]
	if g.Count != 2 || g.Minutes != 90 {
		t.Errorf("group = %+v, want count 2 minutes 90", g)
	}
	if g.CompletedMinutes != 75 {
		t.Errorf("CompletedMinutes = %v, want 75", g.CompletedMinutes)
	}
	if g.Rate() != 83 {
		t.Errorf("Rate = %d, want 83", g.Rate())
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{45, "45分"},
		{120, "2小时"},
		{150, "2小时30分"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
