package grid

import (
	"testing"

	"mochi/internal/schedule"
)

func TestDefaultWindow(t *testing.T) {
	w := DefaultWindow()
	if w.StartHour != schedule.HoursStart || w.EndHour != schedule.HoursEnd {
		t.Errorf("DefaultWindow = %+v, want %d..%d", w, schedule.HoursStart, schedule.HoursEnd)
	}
	if w.Hours() != 24 {
		t.Errorf("Hours() = %d, want 24", w.Hours())
	}
}

func TestFitWindow(t *testing.T) {
	tests := []struct {
		name      string
		items     []schedule.Item
		wantStart int
		wantEnd   int
	}{
		{
			name:      "empty week falls back to the full window",
			items:     nil,
			wantStart: schedule.HoursStart,
			wantEnd:   schedule.HoursEnd,
		},
		{
			name: "morning-only week keeps the minimum span",
			items: []schedule.Item{
				{StartTime: 420, Duration: 60, Type: schedule.TypeBlock},
			},
			wantStart: 6,
			wantEnd:   17,
		},
		{
			name: "late block stretches the bottom with padding",
			items: []schedule.Item{
				{StartTime: 420, Duration: 60, Type: schedule.TypeBlock},
				{StartTime: 21 * 60, Duration: 90, Type: schedule.TypeBlock}, // ends 22:30
			},
			wantStart: 6,
			wantEnd:   24,
		},
		{
			name: "sleep markers are ignored",
			items: []schedule.Item{
				{StartTime: 420, Duration: 60, Type: schedule.TypeBlock},
				{StartTime: 1380, Type: schedule.TypeMarker, MarkerType: schedule.MarkerSleep},
			},
			wantStart: 6,
			wantEnd:   17,
		},
		{
			name: "wake markers count",
			items: []schedule.Item{
				{StartTime: 360, Type: schedule.TypeMarker, MarkerType: schedule.MarkerWake},
			},
			wantStart: schedule.HoursStart,
			wantEnd:   schedule.HoursStart + 12,
		},
		{
			name: "late-night block pushes past the grid end",
			items: []schedule.Item{
				{StartTime: 1680, Duration: 60, Type: schedule.TypeBlock}, // 28:00-29:00
			},
			wantStart: 27,
			wantEnd:   30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := FitWindow(tt.items)
			if w.StartHour != tt.wantStart || w.EndHour != tt.wantEnd {
				t.Errorf("FitWindow = %d..%d, want %d..%d", w.StartHour, w.EndHour, tt.wantStart, tt.wantEnd)
			}
			if w.EndHour < schedule.HoursStart+12 {
				t.Errorf("bottom edge at %d, want at least %d", w.EndHour, schedule.HoursStart+12)
			}
		})
	}
}

func TestDayOffset(t *testing.T) {
	tests := []struct {
		name     string
		deltaX   float64
		colWidth float64
		want     int
	}{
		{"no movement", 0, 62, 0},
		{"under half a column", 30, 62, 0},
		{"over half a column", 32, 62, 1},
		{"negative movement", -70, 62, -1},
		{"zero width guards", 100, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DayOffset(tt.deltaX, tt.colWidth)
			if got != tt.want {
				t.Errorf("DayOffset(%v, %v) = %d, want %d", tt.deltaX, tt.colWidth, got, tt.want)
			}
		})
	}
}

func TestClampDayAndStart(t *testing.T) {
	if got := ClampDay(-2); got != 0 {
		t.Errorf("ClampDay(-2) = %d, want 0", got)
	}
	if got := ClampDay(9); got != 6 {
		t.Errorf("ClampDay(9) = %d, want 6", got)
	}
	if got := ClampStart(100); got != schedule.HoursStart*60 {
		t.Errorf("ClampStart(100) = %d, want %d", got, schedule.HoursStart*60)
	}
	if got := ClampStart(600); got != 600 {
		t.Errorf("ClampStart(600) = %d, want 600", got)
	}
}
