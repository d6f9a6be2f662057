// Package ui implements the mochi command line interface.
package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mochi/internal/config"
	"mochi/internal/db"
	"mochi/internal/filestore"
	"mochi/internal/schedule"
	"mochi/internal/store"
	"mochi/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command

	debug   bool
	noColor bool
	user    string
	week    string
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "mochi",
		Short: "A weekly planner with draggable stickers",
		Long: `Mochi is a weekly planner for the terminal.

Plan your week on a 7-day grid of sticker blocks, drag them around with
the mouse, track wake and sleep times, and let a language model turn a
sentence into a schedule.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			return tui.RunWithDebug(st, a.config, a.debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to mochi-debug.log)")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable color output")
	a.root.PersistentFlags().StringVar(&a.user, "user", "", "User profile ID (defaults to the configured user)")
	a.root.PersistentFlags().StringVar(&a.week, "week", "", "Week to operate on, as its Monday date (YYYY-MM-DD)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.statsCmd())
	a.root.AddCommand(a.planCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.shareCmd())
	a.root.AddCommand(a.templatesCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("mochi %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// openStore opens the configured storage backend.
func (a *App) openStore() (*store.Store, error) {
	var (
		repo schedule.Repository
		err  error
	)
	switch a.config.Storage.Driver {
	case config.DriverFile:
		repo, err = filestore.New(a.config.Storage.Dir)
	default:
		repo, err = db.New(a.config.Storage.DBPath)
	}
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}
	return store.Open(context.Background(), repo)
}

// userID resolves the --user flag against the configured default.
func (a *App) userID() string {
	if a.user != "" {
		return a.user
	}
	return a.config.Planner.User
}

// weekID resolves the --week flag, defaulting to the current week.
func (a *App) weekID() (string, error) {
	if a.week == "" {
		return schedule.WeekID(time.Now()), nil
	}
	monday, err := schedule.ParseWeekID(a.week)
	if err != nil {
		return "", fmt.Errorf("invalid --week: %w", err)
	}
	return schedule.WeekID(monday), nil
}
