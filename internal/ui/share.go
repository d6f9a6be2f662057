package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"mochi/internal/export"
	"mochi/internal/schedule"
)

func (a *App) shareCmd() *cobra.Command {
	var noCopy bool

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Copy a shareable text summary of a week",
		Long: `Render a week as a plain-text summary and copy it to the system
clipboard, ready to paste into a chat.`,
		Example: `  mochi share
  mochi share --week=2026-08-31 --no-copy`,
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
			user, ok := st.User(userID)
			if !ok {
				user = schedule.User{ID: userID, Name: userID}
			}

			text := export.SummaryText(user, weekID, st.WeekItems(userID, weekID))
			fmt.Print(text)

			if noCopy {
				return nil
			}
			if err := clipboard.WriteAll(text); err != nil {
				// Headless terminals have no clipboard. The text is on
				// stdout either way.
				fmt.Println(formatMuted("(无法访问剪贴板: " + err.Error() + ")"))
				return nil
			}
			fmt.Println(formatMuted("(已复制到剪贴板)"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCopy, "no-copy", false, "Print only, skip the clipboard")

	return cmd
}
