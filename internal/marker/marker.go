// Package marker implements the wake/sleep markers drawn across each day
// column, including the sleep-duration math that pairs a morning's wake
// marker with the previous night's sleep marker.
package marker

import (
	"fmt"

	"mochi/internal/schedule"
)

// Default marker positions for a fresh week.
const (
	DefaultWakeMinute  = 7 * 60  // 07:00
	DefaultSleepMinute = 23 * 60 // 23:00
)

// Sleep durations outside this open range are treated as implausible and
// not displayed.
const (
	minPlausibleHours = 0
	maxPlausibleHours = 16
)

// Seed returns a full set of markers for a week: one wake and one sleep
// marker per day, at the default positions.
func Seed(userID, weekID string) []schedule.Item {
	items := make([]schedule.Item, 0, 2*schedule.DaysPerWeek)
	for day := 0; day < schedule.DaysPerWeek; day++ {
		items = append(items, *schedule.NewMarker(userID, schedule.MarkerWake, DefaultWakeMinute, day, weekID))
	}
	for day := 0; day < schedule.DaysPerWeek; day++ {
		items = append(items, *schedule.NewMarker(userID, schedule.MarkerSleep, DefaultSleepMinute, day, weekID))
	}
	return items
}

// PrevDay returns the day column before day, wrapping Monday back to Sunday.
func PrevDay(day int) int {
	return (day + schedule.DaysPerWeek - 1) % schedule.DaysPerWeek
}

// SleepDuration returns the minutes slept between the previous day's sleep
// marker and this day's wake marker, crossing midnight.
func SleepDuration(prevSleepStart, wakeStart int) int {
	return (schedule.MinutesPerDay - prevSleepStart) + wakeStart
}

// DurationText renders a sleep duration as "睡眠: X小时Y分". It returns ""
// when the duration is implausible, so the label is suppressed rather than
// shown as nonsense.
func DurationText(minutes int) string {
	h := minutes / 60
	if h <= minPlausibleHours || h >= maxPlausibleHours {
		return ""
	}
	m := minutes % 60
	if m == 0 {
		return fmt.Sprintf("睡眠: %d小时", h)
	}
	return fmt.Sprintf("睡眠: %d小时%d分", h, m)
}
