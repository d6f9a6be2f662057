package schedule

import (
	"fmt"
	"time"
)

// weekIDLayout is the date layout of week identifiers: the ISO date of the
// week's Monday.
const weekIDLayout = "2006-01-02"

// FormatMinutes renders minutes-from-midnight as "H:MM". Values at or past
// 24:00 wrap to the next morning, so 1500 renders as "1:00".
func FormatMinutes(m int) string {
	h := m / 60 % 24
	return fmt.Sprintf("%d:%02d", h, m%60)
}

// FormatClock renders minutes-from-midnight without wrapping, so entries in
// the extended region show as "25:30". Used for grid hour labels.
func FormatClock(m int) string {
	return fmt.Sprintf("%d:%02d", m/60, m%60)
}

// WeekStart returns the Monday of t's week, truncated to midnight.
func WeekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started six days earlier
	}
	monday := t.AddDate(0, 0, -(weekday - 1))
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}

// WeekID returns the identifier of t's week.
func WeekID(t time.Time) string {
	return WeekStart(t).Format(weekIDLayout)
}

// ParseWeekID parses a week identifier back into its Monday.
func ParseWeekID(id string) (time.Time, error) {
	t, err := time.Parse(weekIDLayout, id)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing week id %q: %w", id, err)
	}
	return t, nil
}

// AddWeeks shifts a week identifier by n weeks.
func AddWeeks(id string, n int) (string, error) {
	t, err := ParseWeekID(id)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n*DaysPerWeek).Format(weekIDLayout), nil
}

// DayNames are the column headers, Monday first.
var DayNames = [DaysPerWeek]string{"周一", "周二", "周三", "周四", "周五", "周六", "周日"}

// DayDate returns the calendar date of a day column within a week.
func DayDate(weekID string, day int) (time.Time, error) {
	t, err := ParseWeekID(weekID)
	if err != nil {
		return time.Time{}, err
	}
	if day < 0 || day >= DaysPerWeek {
		return time.Time{}, ErrInvalidDay
	}
	return t.AddDate(0, 0, day), nil
}

// TodayIndex returns the day column of t within its own week.
func TodayIndex(t time.Time) int {
	weekday := int(t.Weekday())
	if weekday == 0 {
		return 6
	}
	return weekday - 1
}
