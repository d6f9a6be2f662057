// Package stats aggregates planner items into completion summaries.
// Markers and items flagged exclude-from-stats never count.
package stats

import (
	"fmt"
	"sort"

	"mochi/internal/schedule"
)

// TopBreakdown is the number of title groups shown in a summary.
const TopBreakdown = 6

// Group is one title's share of a summary.
type Group struct {
	Title            string
	Count            int
	Minutes          int
	CompletedMinutes float64
}

// Summary aggregates a set of items.
type Summary struct {
	TotalItems       int
	TotalMinutes     int
	CompletedMinutes float64
	Groups           []Group // top titles by minutes, descending
}

// Summarize aggregates items into a summary. Completed minutes are weighted
// by each block's completion percentage, so a half-done two-hour block
// contributes one hour.
func Summarize(items []schedule.Item) Summary {
	var sum Summary
	byTitle := make(map[string]*Group)
	var order []string

	for _, it := range items {
		if it.IsMarker() || it.ExcludeFromStats {
			continue
		}
		done := float64(it.Duration) * float64(it.Completion) / 100

		sum.TotalItems++
		sum.TotalMinutes += it.Duration
		sum.CompletedMinutes += done

		g, ok := byTitle[it.Title]
		if !ok {
			g = &Group{Title: it.Title}
			byTitle[it.Title] = g
			order = append(order, it.Title)
		}
		g.Count++
		g.Minutes += it.Duration
		g.CompletedMinutes += done
	}

	groups := make([]Group, 0, len(order))
	for _, title := range order {
		groups = append(groups, *byTitle[title])
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Minutes > groups[j].Minutes
	})
	if len(groups) > TopBreakdown {
		groups = groups[:TopBreakdown]
	}
	sum.Groups = groups
	return sum
}

// CompletionRate returns the overall completion percentage, rounded.
func (s Summary) CompletionRate() int {
	if s.TotalMinutes == 0 {
		return 0
	}
	return int(s.CompletedMinutes/float64(s.TotalMinutes)*100 + 0.5)
}

// Rate returns a group's completion percentage, rounded.
func (g Group) Rate() int {
	if g.Minutes == 0 {
		return 0
	}
	return int(g.CompletedMinutes/float64(g.Minutes)*100 + 0.5)
}

// FormatDuration renders minutes as a friendly "X小时Y分" string.
func FormatDuration(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%d分", m)
	case m == 0:
		return fmt.Sprintf("%d小时", h)
	default:
		return fmt.Sprintf("%d小时%d分", h, m)
	}
}
