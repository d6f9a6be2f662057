package grid

import "mochi/internal/schedule"

// Window is the vertical hour range rendered for a week. StartHour is
// inclusive, EndHour exclusive; hours past 24 belong to the next morning.
type Window struct {
	StartHour int
	EndHour   int
}

// DefaultWindow covers the full extended day.
func DefaultWindow() Window {
	return Window{StartHour: schedule.HoursStart, EndHour: schedule.HoursEnd}
}

// FitWindow shrinks the window around a week's content, for compact export
// views. Sleep markers sit at the bottom edge of a day and are ignored so
// they do not stretch the window. The bottom edge reaches at least 12 hours
// past the grid start, and may extend beyond the normal grid end when a
// block runs into the early-morning region.
func FitWindow(items []schedule.Item) Window {
	minMinute := schedule.HoursEnd * 60
	maxMinute := schedule.HoursStart * 60

	any := false
	for _, it := range items {
		if it.MarkerType == schedule.MarkerSleep {
			continue
		}
		any = true
		if it.StartTime < minMinute {
			minMinute = it.StartTime
		}
		if end := it.End(); end > maxMinute {
			maxMinute = end
		}
	}
	if !any {
		return DefaultWindow()
	}

	endHour := maxMinute / 60
	if maxMinute%60 != 0 {
		endHour++
	}
	endHour++ // padding below the last entry
	if min := schedule.HoursStart + 12; endHour < min {
		endHour = min
	}

	startHour := minMinute/60 - 1
	if startHour < schedule.HoursStart {
		startHour = schedule.HoursStart
	}

	return Window{StartHour: startHour, EndHour: endHour}
}

// Hours returns the number of hours the window spans.
func (w Window) Hours() int { return w.EndHour - w.StartHour }

// MinMinute returns the first minute inside the window.
func (w Window) MinMinute() int { return w.StartHour * 60 }

// MaxMinute returns the exclusive end minute of the window.
func (w Window) MaxMinute() int { return w.EndHour * 60 }

// Contains reports whether a minute falls inside the window.
func (w Window) Contains(minute int) bool {
	return minute >= w.MinMinute() && minute < w.MaxMinute()
}
