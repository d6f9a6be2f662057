package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mochi/internal/stats"
)

func (a *App) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show completion statistics for a week",
		Example: `  mochi stats
  mochi stats --week=2026-08-31`,
		RunE: func(_ *cobra.Command, _ []string) error {
			weekID, err := a.weekID()
			if err != nil {
				return err
			}
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			sum := stats.Summarize(st.WeekItems(a.userID(), weekID))
			printStats(weekID, sum)
			return nil
		},
	}
}

func printStats(weekID string, sum stats.Summary) {
	fmt.Println(formatHeader(weekID + " 本周统计"))
	if sum.TotalItems == 0 {
		fmt.Println("这周还没有安排。")
		return
	}

	fmt.Printf("  共 %d 项 · %s · 完成 %s\n\n",
		sum.TotalItems,
		stats.FormatDuration(sum.TotalMinutes),
		formatStats(fmt.Sprintf("%d%%", sum.CompletionRate())),
	)

	// Bars scale against the largest group and the terminal width.
	barMax := termWidth() - 40
	if barMax < 10 {
		barMax = 10
	}
	if barMax > 30 {
		barMax = 30
	}
	maxMinutes := 0
	for _, g := range sum.Groups {
		if g.Minutes > maxMinutes {
			maxMinutes = g.Minutes
		}
	}

	for _, g := range sum.Groups {
		width := 1
		if maxMinutes > 0 {
			if width = g.Minutes * barMax / maxMinutes; width < 1 {
				width = 1
			}
		}
		fmt.Printf("  %-10s %s %s · %d次 · %d%%\n",
			g.Title,
			formatStats(strings.Repeat("█", width)),
			stats.FormatDuration(g.Minutes),
			g.Count,
			g.Rate(),
		)
	}
}
