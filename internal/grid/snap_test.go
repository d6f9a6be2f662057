package grid

import (
	"testing"

	"mochi/internal/schedule"
)

func TestSnap(t *testing.T) {
	tests := []struct {
		name    string
		minutes float64
		want    int
	}{
		{"already aligned", 420, 420},
		{"rounds down", 426, 420},
		{"rounds up", 429, 435},
		{"half rounds up", 427.5, 435},
		{"extended region", 1502, 1500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Snap(tt.minutes)
			if got != tt.want {
				t.Errorf("Snap(%v) = %d, want %d", tt.minutes, got, tt.want)
			}
			if got%schedule.SnapMinutes != 0 {
				t.Errorf("Snap(%v) = %d is not grid aligned", tt.minutes, got)
			}
		})
	}
}

func block(id string, start, duration int) schedule.Item {
	return schedule.Item{ID: id, StartTime: start, Duration: duration, Type: schedule.TypeBlock}
}

func TestMagnetStart(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		duration int
		siblings []schedule.Item
		want     int
	}{
		{
			name:     "snaps start to sibling end",
			start:    128,
			duration: 60,
			siblings: []schedule.Item{block("a", 60, 60)}, // ends at 120, gap 8 < 15
			want:     120,
		},
		{
			name:     "snaps end to sibling start",
			start:    50,
			duration: 60, // proposed end 110, sibling starts 120, gap 10 < 15
			siblings: []schedule.Item{block("a", 120, 60)},
			want:     60,
		},
		{
			name:     "out of range stays put",
			start:    200,
			duration: 60,
			siblings: []schedule.Item{block("a", 60, 60)},
			want:     200,
		},
		{
			name:     "self is ignored",
			start:    128,
			duration: 60,
			siblings: []schedule.Item{block("self", 60, 60)},
			want:     128,
		},
		{
			name:     "later sibling wins",
			start:    128,
			duration: 52, // end 180; first sibling ends 120 (gap 8), second starts 170 (gap 10)
			siblings: []schedule.Item{block("a", 60, 60), block("b", 170, 30)},
			want:     118,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MagnetStart(tt.start, tt.duration, tt.siblings, "self")
			if got != tt.want {
				t.Errorf("MagnetStart(%d, %d) = %d, want %d", tt.start, tt.duration, got, tt.want)
			}
		})
	}
}

func TestMagnetDuration(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		duration int
		siblings []schedule.Item
		want     int
	}{
		{
			name:     "snaps to sibling start",
			start:    60,
			duration: 55, // end 115, sibling at 120, gap 5 < 10
			siblings: []schedule.Item{block("a", 120, 60)},
			want:     60,
		},
		{
			name:     "fifteen minute gap is too far",
			start:    60,
			duration: 45, // end 105, sibling at 120, gap 15 >= 10
			siblings: []schedule.Item{block("a", 120, 60)},
			want:     45,
		},
		{
			name:     "floor at minimum duration",
			start:    60,
			duration: 5,
			siblings: nil,
			want:     schedule.MinDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MagnetDuration(tt.start, tt.duration, tt.siblings, "self")
			if got != tt.want {
				t.Errorf("MagnetDuration(%d, %d) = %d, want %d", tt.start, tt.duration, got, tt.want)
			}
		})
	}
}
