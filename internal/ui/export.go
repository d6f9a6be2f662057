package ui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mochi/internal/export"
)

func (a *App) exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a week as an iCalendar file",
		Long: `Export a week's blocks as an iCalendar (.ics) file that calendar
applications can import. Wake and sleep markers are left out.`,
		Example: `  mochi export
  mochi export --week=2026-08-31 -o week.ics`,
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

			cal, err := export.ICS(st.WeekItems(a.userID(), weekID), weekID)
			if err != nil {
				return fmt.Errorf("building calendar: %w", err)
			}

			if output == "" {
				output = "mochi-" + weekID + ".ics"
			}
			if output == "-" {
				fmt.Print(cal)
				return nil
			}
			if err := os.WriteFile(output, []byte(cal), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Printf("已导出 %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (defaults to mochi-<week>.ics, - for stdout)")

	return cmd
}
