package ui

import (
	"sort"

	"mochi/internal/schedule"
)

// storeView is the read-only slice of the store the printing helpers need.
type storeView interface {
	DayBlocks(userID, weekID string, day int) []schedule.Item
	Marker(userID, weekID string, day int, mt schedule.MarkerType) (schedule.Item, bool)
	SleepSummary(userID, weekID string, day int) string
}

// sortedByStart returns blocks ordered by start time instead of stacking
// order.
func sortedByStart(items []schedule.Item) []schedule.Item {
	out := append([]schedule.Item(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime < out[j].StartTime
	})
	return out
}
