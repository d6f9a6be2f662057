package tui

import (
	"mochi/internal/schedule"
)

// Fixed layout metrics. Each grid row is one snap step tall, so a cell edge
// is always a legal drop position.
const (
	hourLabelWidth  = 6
	headerLines     = 2 // title bar + day headers
	footerLines     = 2 // status + help
	minutesPerRow   = schedule.SnapMinutes
	defaultColWidth = 14
	minColWidth     = 8
)

// recalcLayout recomputes column width after a terminal resize.
func (m *Model) recalcLayout() {
	if m.width <= hourLabelWidth {
		return
	}
	w := (m.width - hourLabelWidth) / schedule.DaysPerWeek
	if w < minColWidth {
		w = minColWidth
	}
	m.colWidth = w
	m.gestures.SetColWidth(float64(w))
	m.clampScroll()
}

// gridRows returns the number of visible grid rows.
func (m *Model) gridRows() int {
	rows := m.height - headerLines - footerLines
	if rows < 1 {
		rows = 1
	}
	return rows
}

// totalRows returns the number of rows the window spans.
func (m *Model) totalRows() int {
	return m.window.Hours() * 60 / minutesPerRow
}

func (m *Model) clampScroll() {
	max := m.totalRows() - m.gridRows()
	if max < 0 {
		max = 0
	}
	if m.scrollOffset > max {
		m.scrollOffset = max
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

// rowMinute returns the first minute of a visible row.
func (m *Model) rowMinute(row int) int {
	return m.window.MinMinute() + (row+m.scrollOffset)*minutesPerRow
}

// minuteRow returns the visible row of a minute, which may be off screen.
func (m *Model) minuteRow(minute int) int {
	return (minute-m.window.MinMinute())/minutesPerRow - m.scrollOffset
}

// dayAt maps a terminal column to a day index.
func (m *Model) dayAt(x int) (int, bool) {
	if x < hourLabelWidth || m.colWidth == 0 {
		return 0, false
	}
	day := (x - hourLabelWidth) / m.colWidth
	if day >= schedule.DaysPerWeek {
		return 0, false
	}
	return day, true
}

// minuteAt maps a terminal row to the minute at its top edge.
func (m *Model) minuteAt(y int) (int, bool) {
	row := y - headerLines
	if row < 0 || row >= m.gridRows() {
		return 0, false
	}
	minute := m.rowMinute(row)
	if !m.window.Contains(minute) {
		return 0, false
	}
	return minute, true
}

// blockAt returns the topmost block covering a grid position. Later items
// sit on top, matching render order.
func (m *Model) blockAt(day, minute int) (schedule.Item, bool) {
	var found schedule.Item
	ok := false
	for _, it := range m.store.DayBlocks(m.userID, m.weekID, day) {
		if minute >= it.StartTime && minute < it.End() {
			found = it
			ok = true
		}
	}
	return found, ok
}

// markerAt returns a marker whose line crosses the row starting at minute.
func (m *Model) markerAt(day, minute int) (schedule.Item, bool) {
	for _, mt := range []schedule.MarkerType{schedule.MarkerWake, schedule.MarkerSleep} {
		mk, ok := m.store.Marker(m.userID, m.weekID, day, mt)
		if ok && mk.StartTime >= minute && mk.StartTime < minute+minutesPerRow {
			return mk, true
		}
	}
	return schedule.Item{}, false
}

// isResizeRow reports whether minute falls on a block's last row, where a
// drag grabs the bottom edge instead of the body.
func isResizeRow(it schedule.Item, minute int) bool {
	last := it.End() - minutesPerRow
	if last < it.StartTime {
		last = it.StartTime
	}
	return minute >= last && minute < it.End()
}

// ensureCursorVisible scrolls the grid so the cursor row is on screen.
func (m *Model) ensureCursorVisible() {
	row := (m.cursor.Minute - m.window.MinMinute()) / minutesPerRow
	if row < m.scrollOffset {
		m.scrollOffset = row
	}
	if row >= m.scrollOffset+m.gridRows() {
		m.scrollOffset = row - m.gridRows() + 1
	}
	m.clampScroll()
}

// clampCursor keeps the cursor inside the window after it changes.
func (m *Model) clampCursor() {
	if m.cursor.Day < 0 {
		m.cursor.Day = 0
	}
	if m.cursor.Day >= schedule.DaysPerWeek {
		m.cursor.Day = schedule.DaysPerWeek - 1
	}
	if m.cursor.Minute < m.window.MinMinute() {
		m.cursor.Minute = m.window.MinMinute()
	}
	if max := m.window.MaxMinute() - minutesPerRow; m.cursor.Minute > max {
		m.cursor.Minute = max
	}
}
