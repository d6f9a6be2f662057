package tui

import (
	"context"
	"encoding/json"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"mochi/internal/gesture"
	"mochi/internal/grid"
	"mochi/internal/llm"
	"mochi/internal/schedule"
	"mochi/internal/tui/theme"
)

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case tea.MouseMsg:
		LogMouse(msg)
		if m.mode == ModeNormal {
			return m.handleMouse(msg)
		}
		return m, nil

	case tea.KeyMsg:
		LogKeyPress(msg)
		return m.handleKey(msg)

	case weekReadyMsg:
		if msg.err != nil {
			return m, m.setError("初始化失败: " + msg.err.Error())
		}
		if msg.weekID == m.weekID {
			m.refitWindow()
			if msg.copied > 0 {
				return m, m.setStatus(fmt.Sprintf("已复制 %d 项到本周", msg.copied))
			}
		}
		return m, nil

	case suggestResultMsg:
		return m.handleSuggestResult(msg)

	case statusClearMsg:
		m.statusMsg = ""
		m.statusIsErr = false
		return m, nil
	}

	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModePrompt:
		return m.handlePromptKey(msg)
	case ModeTemplates:
		return m.handleTemplatesKey(msg)
	case ModeStats:
		return m.handleStatsKey(msg)
	case ModeConfirmDelete:
		return m.handleConfirmKey(msg)
	}
	return m.handleNormalKey(msg)
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		m.cursor.Minute -= minutesPerRow
		m.afterCursorMove()
	case "down", "j":
		m.cursor.Minute += minutesPerRow
		m.afterCursorMove()
	case "left", "h":
		m.cursor.Day--
		m.afterCursorMove()
	case "right", "l":
		m.cursor.Day++
		m.afterCursorMove()

	case "pgup", "K":
		m.scrollOffset -= m.gridRows() / 2
		m.clampScroll()
	case "pgdown", "J":
		m.scrollOffset += m.gridRows() / 2
		m.clampScroll()

	case "enter", " ":
		if it, ok := m.blockAt(m.cursor.Day, m.cursor.Minute); ok {
			if err := m.store.CycleCompletion(context.Background(), it.ID); err != nil {
				return m, m.setError("更新失败: " + err.Error())
			}
		}

	case "x", "d":
		if it, ok := m.blockAt(m.cursor.Day, m.cursor.Minute); ok {
			m.selectedID = it.ID
			m.mode = ModeConfirmDelete
		}

	case "n", "t":
		m.mode = ModeTemplates
		m.templateSel = 0

	case "p", "/":
		m.mode = ModePrompt
		m.prompt.SetValue("")
		m.prompt.Focus()
		return m, nil

	case "s":
		m.mode = ModeStats

	case "c":
		m.compact = !m.compact
		m.refitWindow()

	case "[":
		return m.switchWeekBy(-1)
	case "]":
		return m.switchWeekBy(1)

	case "R":
		if it, ok := m.blockAt(m.cursor.Day, m.cursor.Minute); ok {
			return m.toggleRecurring(it.ID)
		}

	case "r":
		return m.advanceWeek()

	case "u":
		m.cycleUser()

	case "g":
		return m.goToCurrentWeek()
	}

	return m, nil
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.prompt.Blur()
		return m, nil

	case "enter":
		text := m.prompt.Value()
		m.prompt.Blur()
		m.mode = ModeNormal
		if text == "" || m.suggesting {
			return m, nil
		}
		if err := m.ensureSuggester(); err != nil {
			return m, m.setError("助手不可用: " + err.Error())
		}
		m.suggesting = true
		return m, tea.Batch(
			m.setStatus("正在安排..."),
			suggestCmd(m.suggester, text, m.cursor.Day),
		)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) handleTemplatesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	templates := m.store.Templates()
	switch msg.String() {
	case "esc", "n", "t", "q":
		m.mode = ModeNormal

	case "up", "k":
		if m.templateSel > 0 {
			m.templateSel--
		}
	case "down", "j":
		if m.templateSel < len(templates)-1 {
			m.templateSel++
		}

	case "enter":
		m.mode = ModeNormal
		if m.templateSel >= len(templates) {
			return m, nil
		}
		return m, m.stampTemplate(templates[m.templateSel])
	}
	return m, nil
}

func (m *Model) handleStatsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "s", "q":
		m.mode = ModeNormal
	}
	return m, nil
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.mode = ModeNormal
		id := m.selectedID
		m.selectedID = ""
		if id == "" {
			return m, nil
		}
		it, _ := m.store.Get(id)
		if err := m.store.Delete(context.Background(), id); err != nil {
			return m, m.setError("删除失败: " + err.Error())
		}
		return m, m.setStatus("已删除 " + it.Title)

	case "esc", "n":
		m.mode = ModeNormal
	}
	return m, nil
}

func (m *Model) handleSuggestResult(msg suggestResultMsg) (tea.Model, tea.Cmd) {
	m.suggesting = false
	if msg.err != nil {
		// The assistant failing never blocks planning by hand.
		LogError("suggest", msg.err)
		return m, m.setError("助手没有返回结果")
	}
	if len(msg.candidates) == 0 {
		return m, m.setStatus("没有可安排的条目")
	}

	items := llm.ToItems(msg.candidates, m.userID, m.weekID)
	if err := m.store.AddAll(context.Background(), items); err != nil {
		return m, m.setError("保存失败: " + err.Error())
	}
	return m, m.setStatus(fmt.Sprintf("已安排 %d 项", len(items)))
}

// stampTemplate drops a template onto the grid at the cursor.
func (m *Model) stampTemplate(t schedule.Template) tea.Cmd {
	payload, err := json.Marshal(gesture.DropPayload{
		TemplateID: t.ID,
		Title:      t.Name,
		Color:      t.Color,
		Duration:   t.DefaultDuration,
	})
	if err != nil {
		return m.setError("模板无效: " + err.Error())
	}

	y := float64(m.cursor.Minute - m.window.MinMinute())
	siblings := m.store.DayBlocks(m.userID, m.weekID, m.cursor.Day)
	item, err := gesture.Drop(payload, y, m.window.StartHour, m.cursor.Day, siblings, m.userID, m.weekID)
	if err != nil {
		LogError("drop", err)
		return m.setError("放置失败: " + err.Error())
	}

	if err := m.store.Add(context.Background(), *item); err != nil {
		return m.setError("保存失败: " + err.Error())
	}
	m.selectedID = item.ID
	return m.setStatus("已添加 " + item.Title)
}

func (m *Model) switchWeekBy(n int) (tea.Model, tea.Cmd) {
	weekID, err := schedule.AddWeeks(m.weekID, n)
	if err != nil {
		return m, m.setError(err.Error())
	}
	// Moving one week forward carries recurring items along, like advancing.
	from := ""
	if n == 1 {
		from = m.weekID
	}
	return m.switchWeek(weekID, from)
}

func (m *Model) switchWeek(weekID, fromWeekID string) (tea.Model, tea.Cmd) {
	m.weekID = weekID
	m.selectedID = ""
	m.refitWindow()
	return m, prepareWeekCmd(m.store, m.userID, m.weekID, fromWeekID)
}

func (m *Model) goToCurrentWeek() (tea.Model, tea.Cmd) {
	return m.switchWeek(schedule.WeekID(timeNow()), "")
}

func (m *Model) advanceWeek() (tea.Model, tea.Cmd) {
	next, copied, err := m.store.AdvanceWeek(context.Background(), m.userID, m.weekID)
	if err != nil {
		return m, m.setError("复制失败: " + err.Error())
	}
	model, cmd := m.switchWeek(next, "")
	if copied > 0 {
		return model, tea.Batch(cmd, m.setStatus(fmt.Sprintf("已复制 %d 项到下周", copied)))
	}
	return model, cmd
}

func (m *Model) toggleRecurring(id string) (tea.Model, tea.Cmd) {
	var recurring bool
	err := m.store.Update(context.Background(), id, func(it *schedule.Item) {
		it.IsRecurring = !it.IsRecurring
		recurring = it.IsRecurring
	})
	if err != nil {
		return m, m.setError("更新失败: " + err.Error())
	}
	if recurring {
		return m, m.setStatus("已设为每周重复")
	}
	return m, m.setStatus("已取消每周重复")
}

func (m *Model) cycleUser() {
	users := m.store.Users()
	if len(users) < 2 {
		return
	}
	for i, u := range users {
		if u.ID == m.userID {
			next := users[(i+1)%len(users)]
			m.userID = next.ID
			m.selectedID = ""
			m.applyTheme(next.Theme)
			m.refitWindow()
			return
		}
	}
	m.userID = users[0].ID
}

func (m *Model) applyTheme(name string) {
	if name == "" {
		return
	}
	t, err := theme.Load(name)
	if err != nil {
		return
	}
	m.theme = t
	m.styles = NewStyles(t)
}

// refitWindow recomputes the display window for the current mode and week.
func (m *Model) refitWindow() {
	if m.compact {
		m.window = grid.FitWindow(m.store.WeekItems(m.userID, m.weekID))
	} else {
		m.window = grid.DefaultWindow()
	}
	m.scrollOffset = 0
	m.clampCursor()
}

func (m *Model) afterCursorMove() {
	m.clampCursor()
	m.ensureCursorVisible()
	if it, ok := m.blockAt(m.cursor.Day, m.cursor.Minute); ok {
		m.selectedID = it.ID
	} else {
		m.selectedID = ""
	}
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.statusMsg = text
	m.statusIsErr = false
	return clearStatusCmd()
}

func (m *Model) setError(text string) tea.Cmd {
	m.statusMsg = text
	m.statusIsErr = true
	return clearStatusCmd()
}

func (m *Model) ensureSuggester() error {
	if m.suggester != nil {
		return nil
	}
	client, err := llm.NewClient(m.config.LLM.Provider, m.config.LLM.Model, m.config.LLM.BaseURL)
	if err != nil {
		return err
	}
	m.suggester = llm.NewSuggester(client)
	return nil
}
