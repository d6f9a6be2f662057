package schedule

import "github.com/google/uuid"

// Well-known template IDs. TemplateAIGen marks blocks produced by the
// assistant rather than stamped from a sticker template.
const (
	TemplateAIGen = "ai-gen"
	TemplateWake  = "sys-wake"
	TemplateSleep = "sys-sleep"
)

// Template is a reusable sticker definition shown in the picker.
type Template struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Color           string `json:"color"`
	Icon            string `json:"icon"`
	DefaultDuration int    `json:"defaultDuration"`
}

// NewTemplate creates a custom sticker template.
func NewTemplate(name, color string, defaultDuration int) Template {
	if defaultDuration < MinDuration {
		defaultDuration = MinDuration
	}
	return Template{
		ID:              "tpl-" + uuid.NewString(),
		Name:            name,
		Color:           color,
		DefaultDuration: defaultDuration,
	}
}

// BuiltinTemplates returns the starter sticker set seeded on first run.
func BuiltinTemplates() []Template {
	return []Template{
		{ID: "tpl-study", Name: "学习", Color: "#60a5fa", Icon: "📘", DefaultDuration: 60},
		{ID: "tpl-work", Name: "工作", Color: "#f59e0b", Icon: "💼", DefaultDuration: 120},
		{ID: "tpl-exercise", Name: "运动", Color: "#34d399", Icon: "🏃", DefaultDuration: 45},
		{ID: "tpl-meal", Name: "吃饭", Color: "#f472b6", Icon: "🍚", DefaultDuration: 30},
		{ID: "tpl-reading", Name: "阅读", Color: "#a78bfa", Icon: "📖", DefaultDuration: 45},
		{ID: "tpl-rest", Name: "休息", Color: "#94a3b8", Icon: "☕", DefaultDuration: 30},
	}
}
