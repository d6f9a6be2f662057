package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mochi/internal/llm"
	"mochi/internal/schedule"
)

func (a *App) planCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "plan <description>",
		Short: "Turn a sentence into scheduled blocks",
		Long: `Ask the configured language model to turn a natural-language
description into sticker blocks on the week grid.

The proposed blocks are printed for review before anything is saved.`,
		Example: `  mochi plan "明天早上跑步半小时，晚上看书一小时"
  mochi plan --yes "周三下午三点开会"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			weekID, err := a.weekID()
			if err != nil {
				return err
			}

			client, err := llm.NewClient(a.config.LLM.Provider, a.config.LLM.Model, a.config.LLM.BaseURL)
			if err != nil {
				return fmt.Errorf("creating LLM client: %w", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			fmt.Println(formatMuted("正在安排..."))
			candidates, err := llm.NewSuggester(client).Suggest(ctx, text, schedule.TodayIndex(time.Now()))
			if err != nil {
				return fmt.Errorf("planning: %w", err)
			}
			if len(candidates) == 0 {
				fmt.Println("没有可安排的条目。")
				return nil
			}

			fmt.Println(formatHeader("建议的安排:"))
			for _, c := range candidates {
				fmt.Printf("  %s %s-%s %s\n",
					formatDay(schedule.DayNames[c.DayIndex]),
					schedule.FormatClock(c.StartTime),
					schedule.FormatClock(c.StartTime+c.Duration),
					c.Title,
				)
			}

			if !yes && !promptYesNo("保存这些安排吗?") {
				fmt.Println("已取消。")
				return nil
			}

			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			items := llm.ToItems(candidates, a.userID(), weekID)
			if err := st.AddAll(context.Background(), items); err != nil {
				return fmt.Errorf("saving: %w", err)
			}
			fmt.Printf("已安排 %d 项。\n", len(items))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Save without confirming")

	return cmd
}
