package gesture

import (
	"encoding/json"
	"fmt"

	"mochi/internal/grid"
	"mochi/internal/schedule"
)

// DropPayload is the JSON carried by a template being dragged onto the
// grid.
type DropPayload struct {
	TemplateID string `json:"templateId"`
	Title      string `json:"title"`
	Color      string `json:"color"`
	Duration   int    `json:"duration"`
}

// Drop materializes a dropped template into a new block at the release
// position. y is the vertical offset in grid pixels below baseHour. The
// start snaps to the grid, then magnetically to same-day siblings. A
// malformed payload returns an error and creates nothing.
func Drop(data []byte, y float64, baseHour, day int, siblings []schedule.Item, userID, weekID string) (*schedule.Item, error) {
	var p DropPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding drop payload: %w", err)
	}
	if p.Duration < schedule.MinDuration {
		p.Duration = schedule.MinDuration
	}

	start := grid.Snap(grid.PixelsToMinutes(y, baseHour))
	start = grid.MagnetStart(start, p.Duration, siblings, "")
	start = grid.ClampStart(start)

	item, err := schedule.NewBlock(userID, p.TemplateID, p.Title, p.Color, start, p.Duration, grid.ClampDay(day), weekID)
	if err != nil {
		return nil, fmt.Errorf("materializing drop: %w", err)
	}
	return item, nil
}
