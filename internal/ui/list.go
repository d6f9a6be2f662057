package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"mochi/internal/schedule"
)

func (a *App) listCmd() *cobra.Command {
	var day int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a week's schedule",
		Long: `List the scheduled blocks for a week, grouped by day.

Wake and sleep markers are shown inline. Use --day to limit the output
to a single day (0 = Monday).`,
		Example: `  mochi list
  mochi list --week=2026-08-31
  mochi list --day=2`,
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

			userID := a.userID()
			items := st.WeekItems(userID, weekID)
			if len(items) == 0 {
				fmt.Println("这周还没有安排。")
				return nil
			}

			fmt.Println(formatHeader(weekID + " 当周"))
			for d := 0; d < schedule.DaysPerWeek; d++ {
				if day >= 0 && d != day {
					continue
				}
				printDay(st, userID, weekID, d)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&day, "day", -1, "Only this day (0 = Monday, 6 = Sunday)")

	return cmd
}

func printDay(st storeView, userID, weekID string, day int) {
	blocks := st.DayBlocks(userID, weekID, day)
	wake, hasWake := st.Marker(userID, weekID, day, schedule.MarkerWake)
	sleep, hasSleep := st.Marker(userID, weekID, day, schedule.MarkerSleep)
	if len(blocks) == 0 && !hasWake && !hasSleep {
		return
	}

	fmt.Println()
	label := schedule.DayNames[day]
	if d, err := schedule.DayDate(weekID, day); err == nil {
		label = fmt.Sprintf("%s %s", label, d.Format("01-02"))
	}
	fmt.Println(formatDay("=== " + label + " ==="))

	if hasWake {
		line := fmt.Sprintf("  ☼ %s 起床", schedule.FormatMinutes(wake.StartTime))
		if text := st.SleepSummary(userID, weekID, day); text != "" {
			line += formatMuted(" (" + text + ")")
		}
		fmt.Println(formatMarker(line))
	}

	for _, it := range sortedByStart(blocks) {
		line := fmt.Sprintf("  %s %s-%s %s",
			completionSymbol(it.Completion),
			schedule.FormatClock(it.StartTime),
			schedule.FormatClock(it.End()),
			it.Title,
		)
		if it.Completion == 100 {
			line = formatDone(line)
		}
		fmt.Println(line)
	}

	if hasSleep {
		fmt.Println(formatMarker(fmt.Sprintf("  ☾ %s 睡觉", schedule.FormatMinutes(sleep.StartTime))))
	}
}

func completionSymbol(completion int) string {
	switch completion {
	case 100:
		return "✓"
	case 50:
		return "◐"
	default:
		return "○"
	}
}
