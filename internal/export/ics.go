// Package export renders a planner week into shareable forms: an iCalendar
// feed and a plain-text summary.
package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"mochi/internal/schedule"
)

// ICS renders a user's week as an iCalendar document. Blocks become timed
// VEVENTs on their calendar dates; wake/sleep markers are grid furniture
// and are left out. Entries in the extended region past 24:00 land on the
// next calendar day, which time arithmetic handles naturally.
func ICS(items []schedule.Item, weekID string) (string, error) {
	monday, err := schedule.ParseWeekID(weekID)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//mochi//weekly planner//CN")

	now := time.Now().UTC()
	for _, it := range items {
		if it.IsMarker() {
			continue
		}

		start := monday.AddDate(0, 0, it.DayIndex).Add(time.Duration(it.StartTime) * time.Minute)
		end := start.Add(time.Duration(it.Duration) * time.Minute)

		ev := cal.AddEvent(it.ID)
		ev.SetCreatedTime(now)
		ev.SetDtStampTime(now)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(it.Title)
		if it.Completion > 0 {
			ev.SetDescription(fmt.Sprintf("完成度: %d%%", it.Completion))
		}
	}

	return cal.Serialize(), nil
}
