package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"mochi/internal/schedule"
)

// Candidate is one schedule entry proposed by the model.
type Candidate struct {
	Title     string `json:"title"`
	StartTime int    `json:"startTime"` // minutes from midnight
	Duration  int    `json:"duration"`  // minutes
	DayIndex  int    `json:"dayIndex"`  // 0 = Monday .. 6 = Sunday
	Color     string `json:"color"`
}

// Suggester turns free-form text into schedule candidates.
type Suggester struct {
	client Client
}

// NewSuggester creates a suggester over the given client.
func NewSuggester(client Client) *Suggester {
	return &Suggester{client: client}
}

const suggestSystemPrompt = `你是一个周计划助手。用户会用自然语言描述想安排的事情，你把它转换成周历上的日程条目。

规则：
- 时间用从午夜开始的分钟数表示（如 7:00 = 420，23:30 = 1410）。
- dayIndex：0=周一，1=周二，…… 6=周日。用户说"今天"时使用给出的今日索引。
- 时间尽量对齐到 15 分钟。
- 用户没有说时长时，按活动类型给一个合理时长。
- color 使用十六进制颜色，按活动类型选择柔和的颜色。
- 只输出一个 JSON 数组，不要任何其他文字。数组元素形如：
  {"title": "晨跑", "startTime": 420, "duration": 45, "dayIndex": 0, "color": "#34d399"}`

// Suggest asks the model for schedule candidates. today is the day column
// of the current date, given to the model so "今天" resolves correctly.
func (s *Suggester) Suggest(ctx context.Context, text string, today int) ([]Candidate, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	messages := []Message{
		{Role: "system", Content: suggestSystemPrompt},
		{Role: "user", Content: fmt.Sprintf("今日索引: %d\n%s", today, text)},
	}

	var candidates []Candidate
	if err := s.client.ChatJSON(ctx, messages, &candidates); err != nil {
		return nil, fmt.Errorf("suggesting schedule: %w", err)
	}

	out := candidates[:0]
	for _, c := range candidates {
		if strings.TrimSpace(c.Title) == "" {
			continue
		}
		if c.Duration < schedule.MinDuration {
			c.Duration = schedule.MinDuration
		}
		if c.DayIndex < 0 || c.DayIndex >= schedule.DaysPerWeek {
			c.DayIndex = today
		}
		out = append(out, c)
	}
	return out, nil
}

// ToItems materializes candidates as planner blocks for a user's week.
// Each block carries the ai-gen template marker and starts uncompleted.
func ToItems(candidates []Candidate, userID, weekID string) []schedule.Item {
	items := make([]schedule.Item, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, schedule.Item{
			ID:         uuid.NewString(),
			UserID:     userID,
			TemplateID: schedule.TemplateAIGen,
			Title:      c.Title,
			Color:      c.Color,
			StartTime:  c.StartTime,
			Duration:   c.Duration,
			DayIndex:   c.DayIndex,
			WeekID:     weekID,
			Type:       schedule.TypeBlock,
		})
	}
	return items
}
