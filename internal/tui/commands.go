package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mochi/internal/llm"
	"mochi/internal/store"
)

// weekReadyMsg reports that a week is prepared: recurring items carried
// over and markers in place. copied is the number of blocks carried.
type weekReadyMsg struct {
	weekID string
	copied int
	err    error
}

// suggestResultMsg carries the outcome of a natural-language scheduling
// request.
type suggestResultMsg struct {
	candidates []llm.Candidate
	err        error
}

// statusClearMsg clears the status line.
type statusClearMsg struct{}

const statusVisible = 4 * time.Second

// prepareWeekCmd readies a week for display. When fromWeekID names the week
// directly before, recurring items roll forward first, so the carry-over has
// to run before the default markers are seeded. Passing an empty fromWeekID
// only seeds markers.
func prepareWeekCmd(st *store.Store, userID, weekID, fromWeekID string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		copied := 0
		if fromWeekID != "" {
			var err error
			if _, copied, err = st.AdvanceWeek(ctx, userID, fromWeekID); err != nil {
				return weekReadyMsg{weekID: weekID, err: err}
			}
		}
		err := st.EnsureMarkers(ctx, userID, weekID)
		return weekReadyMsg{weekID: weekID, copied: copied, err: err}
	}
}

// suggestCmd asks the language model for schedule candidates.
func suggestCmd(s *llm.Suggester, text string, today int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		candidates, err := s.Suggest(ctx, text, today)
		return suggestResultMsg{candidates: candidates, err: err}
	}
}

// clearStatusCmd clears the status line after a delay.
func clearStatusCmd() tea.Cmd {
	return tea.Tick(statusVisible, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}
