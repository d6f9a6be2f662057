package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mochi/internal/schedule"
	"mochi/internal/stats"
)

func (a *App) templatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List sticker templates",
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			fmt.Println(formatHeader("贴纸模板:"))
			for _, t := range st.Templates() {
				fmt.Printf("  %-14s %s (%s)\n",
					formatMuted(t.ID),
					t.Name,
					stats.FormatDuration(t.DefaultDuration),
				)
			}
			return nil
		},
	}

	cmd.AddCommand(a.templatesAddCmd())
	cmd.AddCommand(a.templatesRemoveCmd())

	return cmd
}

func (a *App) templatesAddCmd() *cobra.Command {
	var (
		color    string
		duration int
	)

	cmd := &cobra.Command{
		Use:     "add <name>",
		Short:   "Add a sticker template",
		Example: `  mochi templates add 钢琴课 --duration=45 --color="#f5c2e7"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			t := schedule.NewTemplate(args[0], color, duration)
			if err := st.AddTemplate(context.Background(), t); err != nil {
				return fmt.Errorf("adding template: %w", err)
			}
			fmt.Printf("已添加 %s (%s)\n", t.Name, t.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "#89b4fa", "Block color (hex)")
	cmd.Flags().IntVar(&duration, "duration", 60, "Default duration in minutes")

	return cmd
}

func (a *App) templatesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a sticker template",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.DeleteTemplate(context.Background(), args[0]); err != nil {
				return fmt.Errorf("removing template: %w", err)
			}
			fmt.Println("已删除", args[0])
			return nil
		},
	}
}
