package grid

import (
	"math"

	"mochi/internal/schedule"
)

// Magnetic attraction distances, in minutes. Dropping or moving a block
// snaps to a neighbor edge within MagnetThreshold; resizing uses the
// tighter ResizeMagnetThreshold.
const (
	MagnetThreshold       = 15
	ResizeMagnetThreshold = 10
)

// Snap rounds minutes to the nearest grid line, halves rounding up.
func Snap(minutes float64) int {
	return int(math.Floor(minutes/schedule.SnapMinutes+0.5)) * schedule.SnapMinutes
}

// MagnetStart pulls a proposed start minute toward the edges of sibling
// blocks on the same day. Two attractions are tried against each sibling,
// in stored order, with the later match winning:
//
//   - start near a sibling's end snaps flush below it
//   - end near a sibling's start snaps flush above it
//
// The end used for the second test is the end as proposed, not as adjusted
// by an earlier attraction. Markers and the item itself must not be in
// siblings.
func MagnetStart(start, duration int, siblings []schedule.Item, selfID string) int {
	end := start + duration
	for _, sib := range siblings {
		if sib.ID == selfID {
			continue
		}
		if abs(start-sib.End()) < MagnetThreshold {
			start = sib.End()
		}
		if abs(end-sib.StartTime) < MagnetThreshold {
			start = sib.StartTime - duration
		}
	}
	return start
}

// MagnetDuration pulls a resize toward the start of the nearest sibling
// below, then enforces the minimum block size.
func MagnetDuration(start, duration int, siblings []schedule.Item, selfID string) int {
	end := start + duration
	for _, sib := range siblings {
		if sib.ID == selfID {
			continue
		}
		if abs(end-sib.StartTime) < ResizeMagnetThreshold {
			duration = sib.StartTime - start
		}
	}
	if duration < schedule.MinDuration {
		duration = schedule.MinDuration
	}
	return duration
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
