// Package grid implements the coordinate math of the weekly planner surface:
// pixel/minute conversion, grid and magnetic snapping, and the vertical
// display window.
package grid

import (
	"math"

	"mochi/internal/schedule"
)

// MinutesToPixels converts minutes-from-midnight into a vertical offset
// relative to baseHour, at one pixel per minute.
func MinutesToPixels(minutes float64, baseHour int) float64 {
	return (minutes - float64(baseHour*60)) / 60 * schedule.PixelsPerHour
}

// PixelsToMinutes converts a vertical offset back into minutes-from-midnight.
func PixelsToMinutes(px float64, baseHour int) float64 {
	return px/schedule.PixelsPerHour*60 + float64(baseHour*60)
}

// DayOffset converts a horizontal drag distance into whole day columns,
// rounding to the nearest column.
func DayOffset(deltaX, colWidth float64) int {
	if colWidth <= 0 {
		return 0
	}
	return int(math.Round(deltaX / colWidth))
}

// ClampDay clamps a day index into the 0..6 range.
func ClampDay(day int) int {
	if day < 0 {
		return 0
	}
	if day >= schedule.DaysPerWeek {
		return schedule.DaysPerWeek - 1
	}
	return day
}

// ClampStart keeps a start minute from drifting above the top of the grid.
func ClampStart(start int) int {
	if floor := schedule.HoursStart * 60; start < floor {
		return floor
	}
	return start
}
