package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyplan/internal/contract"
)

// FormatScheduleResult renders what one scheduling pass placed and what it
// could not.
func FormatScheduleResult(resp *contract.ScheduleWeekResponse) string {
	var b strings.Builder
	res := resp.Result

	b.WriteString(Header(fmt.Sprintf("Week %d schedule", resp.WeekNumber)))
	b.WriteString("\n")

	total := res.ScheduledMinutes()
	for _, u := range res.Unscheduled {
		total += int(u.Task.EstimatedDuration.Minutes())
	}
	fmt.Fprintf(&b, "%s %s of %s  %s\n\n",
		Dim("placed"), FormatMinutes(res.ScheduledMinutes()), FormatMinutes(total),
		RenderProgress(Ratio(res.ScheduledMinutes(), total), 20))

	if len(res.Scheduled) > 0 {
		rows := make([][]string, 0, len(res.Scheduled))
		for i := range res.Scheduled {
			st := &res.Scheduled[i]
			rows = append(rows, []string{
				Date(st.ScheduledStart),
				ClockRange(st.ScheduledStart, st.ScheduledEnd),
				Bold(st.Title) + partSuffix(st.Part, st.Parts),
				DifficultyBadge(st.Difficulty),
			})
		}
		b.WriteString(RenderTable([]string{"DAY", "TIME", "TASK", "DIFFICULTY"}, rows))
	}

	if len(res.Unscheduled) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render(fmt.Sprintf("%d item(s) could not be scheduled:", len(res.Unscheduled))))
		b.WriteString("\n")
		for _, u := range res.Unscheduled {
			day := ""
			if u.Date != nil {
				day = " " + Dim(Date(*u.Date))
			}
			fmt.Fprintf(&b, "  %s %s%s%s %s\n",
				StyleRed.Render("✖"), u.Task.Title, partSuffix(u.Part, u.Parts), day,
				Dim(fmt.Sprintf("[%s] %s", u.Code, u.Message)))
		}
	}
	return b.String()
}

func partSuffix(part, parts int) string {
	if parts <= 1 {
		return ""
	}
	return Dim(fmt.Sprintf(" (%d/%d)", part, parts))
}
