package tui

import (
	"github.com/charmbracelet/lipgloss"

	"mochi/internal/tui/theme"
)

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Title      lipgloss.Style
	WeekLabel  lipgloss.Style
	DayHeader  lipgloss.Style
	TodayHdr   lipgloss.Style
	HourLabel  lipgloss.Style
	GridLine   lipgloss.Style
	GridCell   lipgloss.Style
	Block      lipgloss.Style
	BlockDone  lipgloss.Style
	Selected   lipgloss.Style
	Ghost      lipgloss.Style
	WakeLine   lipgloss.Style
	SleepLine  lipgloss.Style
	SleepLabel lipgloss.Style
	Status     lipgloss.Style
	StatusWarn lipgloss.Style
	Help       lipgloss.Style
	PromptBox  lipgloss.Style
	Overlay    lipgloss.Style
	OverlayHdr lipgloss.Style
	StatBar    lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(theme.Color(t.Accent)).
			Bold(true),
		WeekLabel: lipgloss.NewStyle().
			Foreground(theme.Color(t.Fg)),
		DayHeader: lipgloss.NewStyle().
			Foreground(theme.Color(t.FgMuted)).
			Align(lipgloss.Center),
		TodayHdr: lipgloss.NewStyle().
			Foreground(theme.Color(t.Accent)).
			Bold(true).
			Align(lipgloss.Center),
		HourLabel: lipgloss.NewStyle().
			Foreground(theme.Color(t.FgMuted)),
		GridLine: lipgloss.NewStyle().
			Foreground(theme.Color(t.GridLine)),
		GridCell: lipgloss.NewStyle().
			Foreground(theme.Color(t.FgMuted)),
		Block: lipgloss.NewStyle().
			Foreground(theme.Color(t.Bg)),
		BlockDone: lipgloss.NewStyle().
			Foreground(theme.Color(t.Bg)).
			Background(theme.Color(t.Success)),
		Selected: lipgloss.NewStyle().
			Foreground(theme.Color(t.Fg)).
			Background(theme.Color(t.BgSelection)).
			Bold(true),
		Ghost: lipgloss.NewStyle().
			Foreground(theme.Color(t.Fg)).
			Background(theme.Color(t.BgHighlight)).
			Faint(true),
		WakeLine: lipgloss.NewStyle().
			Foreground(theme.Color(t.Wake)),
		SleepLine: lipgloss.NewStyle().
			Foreground(theme.Color(t.Sleep)),
		SleepLabel: lipgloss.NewStyle().
			Foreground(theme.Color(t.Sleep)).
			Italic(true),
		Status: lipgloss.NewStyle().
			Foreground(theme.Color(t.Success)),
		StatusWarn: lipgloss.NewStyle().
			Foreground(theme.Color(t.Warning)),
		Help: lipgloss.NewStyle().
			Foreground(theme.Color(t.FgMuted)),
		PromptBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Color(t.Accent)).
			Padding(0, 1),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Color(t.Accent)).
			Padding(0, 2),
		OverlayHdr: lipgloss.NewStyle().
			Foreground(theme.Color(t.Accent)).
			Bold(true),
		StatBar: lipgloss.NewStyle().
			Foreground(theme.Color(t.Accent)),
	}
}

// BlockStyle returns the base block style tinted with an item's color.
func (s *Styles) BlockStyle(color string) lipgloss.Style {
	if color == "" {
		return s.Block.Background(lipgloss.Color("#7f849c"))
	}
	return s.Block.Background(lipgloss.Color(color))
}
