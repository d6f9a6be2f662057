package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"mochi/internal/gesture"
)

// pointerEvent converts a mouse message into gesture pixel space: X stays
// in terminal cells (the controller knows the column width), Y becomes
// minutes, which equal pixels at the grid's scale.
func (m *Model) pointerEvent(msg tea.MouseMsg) gesture.PointerEvent {
	return gesture.PointerEvent{
		X:    float64(msg.X),
		Y:    float64(msg.Y-headerLines+m.scrollOffset) * minutesPerRow,
		Ctrl: msg.Ctrl,
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollOffset--
		m.clampScroll()
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollOffset++
		m.clampScroll()
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return m.handlePress(msg)
		}

	case tea.MouseActionMotion:
		if m.gestures.Active() {
			m.events.Move(m.pointerEvent(msg))
		}

	case tea.MouseActionRelease:
		if m.gestures.Active() {
			m.events.Up(m.pointerEvent(msg))
			return m, m.applyCommit()
		}
	}

	return m, nil
}

func (m *Model) handlePress(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	day, okDay := m.dayAt(msg.X)
	minute, okMin := m.minuteAt(msg.Y)
	if !okDay || !okMin {
		return m, nil
	}

	m.cursor = Position{Day: day, Minute: minute}
	ev := m.pointerEvent(msg)

	if mk, ok := m.markerAt(day, minute); ok {
		m.selectedID = mk.ID
		if err := m.gestures.Begin(mk, gesture.ModeMarkerDrag, ev); err != nil {
			LogError("begin marker drag", err)
		}
		return m, nil
	}

	if it, ok := m.blockAt(day, minute); ok {
		m.selectedID = it.ID
		mode := gesture.ModeMove
		if isResizeRow(it, minute) {
			mode = gesture.ModeResize
		}
		if err := m.gestures.Begin(it, mode, ev); err != nil {
			LogError("begin drag", err)
		}
		return m, nil
	}

	m.selectedID = ""
	return m, nil
}

// applyCommit folds the controller's pending commit into the store.
func (m *Model) applyCommit() tea.Cmd {
	if m.lastCommit == nil {
		return nil
	}
	r := *m.lastCommit
	m.lastCommit = nil
	LogGesture(r)

	if r.Kind == gesture.CommitNone {
		return nil
	}
	if err := m.store.Apply(context.Background(), r); err != nil {
		return m.setError("保存失败: " + err.Error())
	}
	if r.Kind == gesture.CommitDuplicate {
		m.selectedID = r.Item.ID
		return m.setStatus("已复制 " + r.Item.Title)
	}
	return nil
}
