package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"mochi/internal/gesture"
	"mochi/internal/grid"
	"mochi/internal/schedule"
	"mochi/internal/stats"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "加载中..."
	}
	if m.width < hourLabelWidth+minColWidth {
		return "Terminal too small"
	}

	switch m.mode {
	case ModeTemplates:
		return m.placeOverlay(m.renderTemplates())
	case ModeStats:
		return m.placeOverlay(m.renderStats())
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteByte('\n')
	b.WriteString(m.renderDayHeaders())
	b.WriteByte('\n')
	b.WriteString(m.renderGrid())
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *Model) renderHeader() string {
	title := m.styles.Title.Render("mochi")
	week := m.styles.WeekLabel.Render(" " + m.weekID + " 当周")
	user := m.styles.WeekLabel.Render(m.userName())
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(week) - lipgloss.Width(user)
	if gap < 1 {
		gap = 1
	}
	return title + week + strings.Repeat(" ", gap) + user
}

func (m *Model) userName() string {
	for _, u := range m.store.Users() {
		if u.ID == m.userID {
			return u.Name
		}
	}
	return m.userID
}

func (m *Model) renderDayHeaders() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", hourLabelWidth))
	today := schedule.TodayIndex(timeNow())
	thisWeek := m.weekID == schedule.WeekID(timeNow())
	for day := 0; day < schedule.DaysPerWeek; day++ {
		label := schedule.DayNames[day]
		if d, err := schedule.DayDate(m.weekID, day); err == nil {
			label = fmt.Sprintf("%s %d", schedule.DayNames[day], d.Day())
		}
		style := m.styles.DayHeader
		if thisWeek && day == today {
			style = m.styles.TodayHdr
		}
		b.WriteString(style.Width(m.colWidth).Render(label))
	}
	return b.String()
}

func (m *Model) renderGrid() string {
	var b strings.Builder
	rows := m.gridRows()
	for row := 0; row < rows; row++ {
		minute := m.rowMinute(row)
		if !m.window.Contains(minute) {
			b.WriteByte('\n')
			continue
		}
		b.WriteString(m.renderHourLabel(minute))
		for day := 0; day < schedule.DaysPerWeek; day++ {
			b.WriteString(m.renderCell(day, minute))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// renderHourLabel shows the clock time on full-hour rows, including the
// extended late-night hours past 24.
func (m *Model) renderHourLabel(minute int) string {
	if minute%60 != 0 {
		return strings.Repeat(" ", hourLabelWidth)
	}
	label := schedule.FormatClock(minute)
	return m.styles.HourLabel.Width(hourLabelWidth).Render(label)
}

func (m *Model) renderCell(day, minute int) string {
	if g, ok := m.ghost(); ok && g.DayIndex == day && minute >= g.StartTime && minute < g.End() {
		return m.renderGhostRow(g, minute)
	}
	if mk, ok := m.markerAt(day, minute); ok {
		return m.renderMarkerLine(mk)
	}
	if it, ok := m.blockAt(day, minute); ok {
		return m.renderBlockRow(it, minute)
	}
	if m.mode == ModeNormal && day == m.cursor.Day && minute == m.cursor.Minute {
		return m.styles.Selected.Width(m.colWidth).Render(" ")
	}
	if minute%60 == 0 {
		return m.styles.GridLine.Render(strings.Repeat("┄", m.colWidth))
	}
	return strings.Repeat(" ", m.colWidth)
}

// ghost returns the destination shadow of a block being moved. Resize and
// marker drags update the store live, so only moves need one. The preview
// snaps and clamps like the release will, without magnet attraction.
func (m *Model) ghost() (schedule.Item, bool) {
	it, mode, ok := m.gestures.Session()
	if !ok || mode != gesture.ModeMove {
		return schedule.Item{}, false
	}
	dx, dy := m.gestures.Offset()
	if dx == 0 && dy == 0 {
		return schedule.Item{}, false
	}
	it.StartTime = grid.ClampStart(grid.Snap(float64(it.StartTime) + dy))
	it.DayIndex = grid.ClampDay(it.DayIndex + grid.DayOffset(dx, float64(m.colWidth)))
	return it, true
}

func (m *Model) renderGhostRow(it schedule.Item, minute int) string {
	text := ""
	switch minute {
	case it.StartTime:
		text = "┆ " + it.Title
	case it.StartTime + minutesPerRow:
		text = "  " + schedule.FormatMinutes(it.StartTime) + "-" + schedule.FormatMinutes(it.End())
	}
	return m.styles.Ghost.Width(m.colWidth).Render(ansi.Truncate(text, m.colWidth, "…"))
}

func (m *Model) renderMarkerLine(mk schedule.Item) string {
	style := m.styles.WakeLine
	icon := "☼"
	label := schedule.FormatMinutes(mk.StartTime)
	if mk.MarkerType == schedule.MarkerSleep {
		style = m.styles.SleepLine
		icon = "☾"
	} else if text := m.store.SleepSummary(m.userID, m.weekID, mk.DayIndex); text != "" {
		label = text
	}
	if mk.ID == m.selectedID {
		style = style.Bold(true)
	}
	line := icon + " " + label + " "
	if pad := m.colWidth - lipgloss.Width(line); pad > 0 {
		line += strings.Repeat("╌", pad)
	}
	return style.Render(ansi.Truncate(line, m.colWidth, ""))
}

func (m *Model) renderBlockRow(it schedule.Item, minute int) string {
	var text string
	switch minute {
	case it.StartTime:
		mark := " "
		switch it.Completion {
		case 100:
			mark = "✓"
		case 50:
			mark = "◐"
		}
		text = mark + " " + it.Title
		if it.IsRecurring {
			text += " ⟳"
		}
	case it.StartTime + minutesPerRow:
		text = "  " + schedule.FormatMinutes(it.StartTime) + "-" + schedule.FormatMinutes(it.End())
	default:
		text = ""
	}

	style := m.styles.BlockStyle(it.Color)
	if it.Completion == 100 {
		style = m.styles.BlockDone
	}
	if it.ID == m.selectedID {
		style = style.Bold(true).Underline(minute == it.StartTime)
	}
	return style.Width(m.colWidth).Render(ansi.Truncate(text, m.colWidth, "…"))
}

func (m *Model) renderFooter() string {
	status := " "
	if m.statusMsg != "" {
		style := m.styles.Status
		if m.statusIsErr {
			style = m.styles.StatusWarn
		}
		status = style.Render(m.statusMsg)
	} else if m.suggesting {
		status = m.styles.Status.Render("正在安排...")
	}

	second := m.styles.Help.Render(helpLine(m.mode))
	if m.mode == ModePrompt {
		second = m.styles.PromptBox.Width(m.width - 2).Render(m.prompt.View())
	}
	return ansi.Truncate(status, m.width, "…") + "\n" + ansi.Truncate(second, m.width, "…")
}

func (m *Model) renderTemplates() string {
	var b strings.Builder
	b.WriteString(m.styles.OverlayHdr.Render("选择贴纸"))
	b.WriteByte('\n')
	for i, t := range m.store.Templates() {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Color)).Render("●")
		line := fmt.Sprintf("%s %s (%s)", dot, t.Name, stats.FormatDuration(t.DefaultDuration))
		if i == m.templateSel {
			line = m.styles.Selected.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(m.styles.Help.Render("enter 放到光标处 · esc 返回"))
	return m.styles.Overlay.Render(b.String())
}

func (m *Model) renderStats() string {
	summary := stats.Summarize(m.store.WeekItems(m.userID, m.weekID))
	var b strings.Builder
	b.WriteString(m.styles.OverlayHdr.Render("本周统计 " + m.weekID))
	b.WriteByte('\n')

	if summary.TotalItems == 0 {
		b.WriteString(m.styles.Help.Render("本周还没有安排"))
	} else {
		b.WriteString(fmt.Sprintf("共 %d 项 · %s · 完成 %d%%\n\n",
			summary.TotalItems,
			stats.FormatDuration(summary.TotalMinutes),
			summary.CompletionRate()))
		for _, g := range summary.Groups {
			bar := m.styles.StatBar.Render(strings.Repeat("█", barWidth(g, summary)))
			b.WriteString(fmt.Sprintf("%-8s %s %s · %d%%\n",
				ansi.Truncate(g.Title, 8, "…"),
				bar,
				stats.FormatDuration(g.Minutes),
				g.Rate()))
		}
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("esc 返回"))
	return m.styles.Overlay.Render(b.String())
}

// barWidth scales a group's minutes against the largest group, max 20 cells.
func barWidth(g stats.Group, s stats.Summary) int {
	max := 0
	for _, o := range s.Groups {
		if o.Minutes > max {
			max = o.Minutes
		}
	}
	if max <= 0 {
		return 0
	}
	w := g.Minutes * 20 / max
	if w < 1 {
		w = 1
	}
	return w
}

func (m *Model) placeOverlay(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
