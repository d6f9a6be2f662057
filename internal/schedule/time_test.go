package schedule

import (
	"testing"
	"time"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{"midnight", 0, "0:00"},
		{"morning", 420, "7:00"},
		{"single digit minute", 425, "7:05"},
		{"late evening", 1380, "23:00"},
		{"wraps past midnight", 1500, "1:00"},
		{"end of extended grid", 1740, "5:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatMinutes(tt.minutes)
			if got != tt.want {
				t.Errorf("FormatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(1500); got != "25:00" {
		t.Errorf("FormatClock(1500) = %q, want %q", got, "25:00")
	}
	if got := FormatClock(420); got != "7:00" {
		t.Errorf("FormatClock(420) = %q, want %q", got, "7:00")
	}
}

func TestWeekID(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"monday maps to itself", time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), "2026-03-02"},
		{"wednesday maps back to monday", time.Date(2026, 3, 4, 23, 59, 0, 0, time.UTC), "2026-03-02"},
		{"sunday belongs to preceding monday", time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), "2026-03-02"},
		{"next monday starts a new week", time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), "2026-03-09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekID(tt.date)
			if got != tt.want {
				t.Errorf("WeekID(%v) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestAddWeeks(t *testing.T) {
	next, err := AddWeeks("2026-03-02", 1)
	if err != nil {
		t.Fatalf("AddWeeks returned error: %v", err)
	}
	if next != "2026-03-09" {
		t.Errorf("AddWeeks(+1) = %q, want %q", next, "2026-03-09")
	}

	prev, err := AddWeeks("2026-03-02", -1)
	if err != nil {
		t.Fatalf("AddWeeks returned error: %v", err)
	}
	if prev != "2026-02-23" {
		t.Errorf("AddWeeks(-1) = %q, want %q", prev, "2026-02-23")
	}

	if _, err := AddWeeks("not-a-week", 1); err == nil {
		t.Error("AddWeeks with malformed id should return an error")
	}
}

func TestTodayIndex(t *testing.T) {
	if got := TodayIndex(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)); got != 0 {
		t.Errorf("monday index = %d, want 0", got)
	}
	if got := TodayIndex(time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)); got != 6 {
		t.Errorf("sunday index = %d, want 6", got)
	}
}
