package export

import (
	"strings"
	"testing"

	"mochi/internal/schedule"
)

func weekItems(t *testing.T) []schedule.Item {
	t.Helper()
	study, err := schedule.NewBlock("user-1", "tpl-study", "学习", "#60a5fa", 420, 60, 0, "2026-03-02")
	if err != nil {
		t.Fatalf("NewBlock returned error: %v", err)
	}
	study.Completion = 100
	late, err := schedule.NewBlock("user-1", "tpl-rest", "夜宵", "#94a3b8", 1500, 30, 2, "2026-03-02")
	if err != nil {
		t.Fatalf("NewBlock returned error: %v", err)
	}
	wake := schedule.NewMarker("user-1", schedule.MarkerWake, 420, 0, "2026-03-02")
	return []schedule.Item{*study, *late, *wake}
}

func TestICS(t *testing.T) {
	out, err := ICS(weekItems(t), "2026-03-02")
	if err != nil {
		t.Fatalf("ICS returned error: %v", err)
	}

	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Error("output is not a calendar document")
	}
	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("calendar holds %d events, want 2 (markers excluded)", got)
	}
	if !strings.Contains(out, "SUMMARY:学习") {
		t.Error("block title missing from calendar")
	}
	// 25:00 on Wednesday is 01:00 Thursday.
	if !strings.Contains(out, "20260305T010000") {
		t.Error("extended-region block should land on the next calendar day")
	}
	if !strings.Contains(out, "完成度: 100%") {
		t.Error("completion note missing from calendar")
	}
}

func TestICSRejectsBadWeek(t *testing.T) {
	if _, err := ICS(nil, "garbage"); err == nil {
		t.Error("malformed week id should return an error")
	}
}

func TestSummaryText(t *testing.T) {
	user := schedule.User{ID: "user-1", Name: "我", Avatar: "🙂"}
	out := SummaryText(user, "2026-03-02", weekItems(t))

	if !strings.Contains(out, "2026-03-02") {
		t.Error("summary should name the week")
	}
	if !strings.Contains(out, "周一 03-02") {
		t.Error("summary should list day headers with dates")
	}
	if !strings.Contains(out, "[✓] 7:00-8:00 学习") {
		t.Errorf("completed block line missing:\n%s", out)
	}
	if !strings.Contains(out, "25:00-25:30 夜宵") {
		t.Error("extended-region block should keep its grid clock")
	}
	if strings.Contains(out, "起床") {
		t.Error("markers must not appear in the summary")
	}
	if !strings.Contains(out, "共 2 项") {
		t.Error("summary totals missing")
	}
}

func TestSummaryTextSkipsEmptyDays(t *testing.T) {
	user := schedule.User{ID: "user-1", Name: "我"}
	out := SummaryText(user, "2026-03-02", weekItems(t))
	if strings.Contains(out, "周五") {
		t.Error("days without blocks should be omitted")
	}
}
