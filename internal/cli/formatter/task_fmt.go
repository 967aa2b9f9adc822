package formatter

import (
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// FormatTaskList renders scheduled tasks with their full ids, which the
// task done/skip commands take. A progress line summarises completion.
func FormatTaskList(tasks []*domain.ScheduledTask) string {
	if len(tasks) == 0 {
		return Dim("Nothing scheduled.") + "\n"
	}

	var b strings.Builder
	done := 0
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == domain.ScheduledDone {
			done++
		}
		title := Bold(t.Title) + partSuffix(t.Part, t.Parts)
		if t.Quantity != "" {
			title += " " + Dim(t.Quantity)
		}
		rows = append(rows, []string{
			Date(t.ScheduledStart),
			ClockRange(t.ScheduledStart, t.ScheduledEnd),
			title,
			TaskStatusPill(t.Status),
			Dim(t.ID),
		})
	}
	b.WriteString(RenderTable([]string{"DAY", "TIME", "TASK", "STATUS", "ID"}, rows))
	b.WriteString("\n")
	b.WriteString(RenderProgress(Ratio(done, len(tasks)), 20))
	b.WriteString(" " + Dim("complete") + "\n")
	return b.String()
}
