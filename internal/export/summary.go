package export

import (
	"fmt"
	"sort"
	"strings"

	"mochi/internal/grid"
	"mochi/internal/schedule"
	"mochi/internal/stats"
)

// SummaryText renders a user's week as a plain-text report suitable for
// pasting into a chat. The hour range shown is fitted to the week's
// content the same way the compact export view fits its window.
func SummaryText(user schedule.User, weekID string, items []schedule.Item) string {
	var b strings.Builder

	w := grid.FitWindow(items)
	fmt.Fprintf(&b, "%s %s 的一周 (%s)\n", user.Avatar, user.Name, weekID)
	fmt.Fprintf(&b, "时段 %s - %s\n\n", schedule.FormatClock(w.MinMinute()), schedule.FormatClock(w.MaxMinute()))

	for day := 0; day < schedule.DaysPerWeek; day++ {
		var blocks []schedule.Item
		for _, it := range items {
			if it.DayIndex == day && it.IsBlock() {
				blocks = append(blocks, it)
			}
		}
		if len(blocks) == 0 {
			continue
		}
		sort.SliceStable(blocks, func(i, j int) bool {
			return blocks[i].StartTime < blocks[j].StartTime
		})

		date, _ := schedule.DayDate(weekID, day)
		fmt.Fprintf(&b, "%s %s\n", schedule.DayNames[day], date.Format("01-02"))
		for _, it := range blocks {
			mark := " "
			switch {
			case it.Completion >= 100:
				mark = "✓"
			case it.Completion > 0:
				mark = "◐"
			}
			fmt.Fprintf(&b, "  [%s] %s-%s %s\n", mark,
				schedule.FormatClock(it.StartTime), schedule.FormatClock(it.End()), it.Title)
		}
	}

	sum := stats.Summarize(items)
	if sum.TotalItems > 0 {
		fmt.Fprintf(&b, "\n共 %d 项 · %s · 完成 %d%%\n",
			sum.TotalItems, stats.FormatDuration(sum.TotalMinutes), sum.CompletionRate())
	}

	return b.String()
}
