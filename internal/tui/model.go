// Package tui provides the terminal user interface for the weekly planner.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"mochi/internal/config"
	"mochi/internal/gesture"
	"mochi/internal/grid"
	"mochi/internal/llm"
	"mochi/internal/schedule"
	"mochi/internal/store"
	"mochi/internal/tui/theme"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt      // Natural-language scheduling input
	ModeTemplates   // Sticker template picker
	ModeStats       // Statistics panel
	ModeConfirmDelete
)

// Position is the keyboard cursor on the grid.
type Position struct {
	Day    int // 0=Monday, 6=Sunday
	Minute int // minutes from midnight, grid aligned
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	store  *store.Store
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Session
	userID string
	weekID string

	// Grid state
	window  grid.Window
	compact bool // window fitted to content instead of the full day

	// Gestures
	events     *gesture.Events
	gestures   *gesture.Controller
	lastCommit *gesture.Result

	// State
	mode       Mode
	cursor     Position
	selectedID string

	// Template picker
	templateSel int

	// Prompt state
	prompt     textinput.Model
	suggester  *llm.Suggester
	suggesting bool

	// Terminal dimensions and layout
	width        int
	height       int
	colWidth     int // Column width in cells, computed from terminal width
	scrollOffset int // Grid scroll position, in rows

	// Messages
	statusMsg   string
	statusIsErr bool

	// Error state
	err error
}

// New creates a new TUI model.
func New(st *store.Store, cfg *config.Config) *Model {
	ti := textinput.New()
	ti.Placeholder = "描述你想安排的事情..."
	ti.CharLimit = 256

	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load("mocha")
	}

	now := timeNow()
	m := &Model{
		store:    st,
		config:   cfg,
		theme:    t,
		styles:   NewStyles(t),
		userID:   cfg.Planner.User,
		weekID:   schedule.WeekID(now),
		window:   grid.DefaultWindow(),
		events:   gesture.NewEvents(),
		mode:     ModeNormal,
		cursor:   Position{Day: schedule.TodayIndex(now), Minute: 9 * 60},
		prompt:   ti,
		colWidth: defaultColWidth,
	}

	m.gestures = gesture.NewController(m.events, gesture.Config{
		ColWidth: float64(m.colWidth),
		Siblings: func(day int) []schedule.Item {
			return m.store.DayBlocks(m.userID, m.weekID, day)
		},
		OnLive: func(it schedule.Item) {
			m.store.SetLive(it)
		},
		OnCommit: func(r gesture.Result) {
			m.lastCommit = &r
		},
	})

	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(prepareWeekCmd(m.store, m.userID, m.weekID, ""), textinput.Blink)
}

// Run starts the TUI.
func Run(st *store.Store, cfg *config.Config) error {
	return RunWithDebug(st, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(st *store.Store, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(st, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
