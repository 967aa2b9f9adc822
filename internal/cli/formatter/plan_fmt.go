package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// FormatPlanList renders plan headers as a table.
func FormatPlanList(plans []*domain.Plan) string {
	if len(plans) == 0 {
		return Dim("No plans yet. Generate one with: studyplan plan generate --goal ID") + "\n"
	}

	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Title),
			p.StartDate.Format("2006-01-02"),
			fmt.Sprintf("%d", p.WeekCount),
			Dim(string(p.Source)),
		})
	}
	return RenderTable([]string{"ID", "PLAN", "START", "WEEKS", "SOURCE"}, rows)
}

// FormatPlan renders a plan overview with one row per week.
func FormatPlan(p *domain.Plan) string {
	var b strings.Builder
	b.WriteString(Header(p.Title))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s   %s %s   %s %d\n\n",
		Dim("id"), p.ID, Dim("starts"), Date(p.StartDate), Dim("weeks"), p.WeekCount)

	rows := make([][]string, 0, len(p.Weeks))
	for _, w := range p.Weeks {
		rows = append(rows, []string{
			fmt.Sprintf("%d", w.WeekNumber),
			DateRange(w.StartDate, w.EndDate),
			fmt.Sprintf("%d", len(w.Tasks)),
			FormatDuration(w.TotalDuration()),
			strings.Join(w.Milestones, "; "),
		})
	}
	b.WriteString(RenderTable([]string{"WEEK", "DATES", "TASKS", "TIME", "MILESTONES"}, rows))
	return b.String()
}

// FormatWeek renders the tasks of one week plan.
func FormatWeek(w *domain.WeekPlan) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Week %d", w.WeekNumber)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s   %s %s\n", DateRange(w.StartDate, w.EndDate), Dim("total"), FormatDuration(w.TotalDuration()))
	for _, m := range w.Milestones {
		fmt.Fprintf(&b, "  %s %s\n", StylePurple.Render("◆"), m)
	}
	b.WriteString("\n")

	if len(w.Tasks) == 0 {
		b.WriteString(Dim("No tasks this week.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(w.Tasks))
	for i, t := range w.Tasks {
		days := Dim("any")
		if len(t.PreferredWeekdays) > 0 {
			days = domain.FormatWeekdays(t.PreferredWeekdays)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			Bold(t.Title),
			t.Quantity,
			FormatDuration(t.EstimatedDuration),
			DifficultyBadge(t.Difficulty),
			days,
		})
	}
	b.WriteString(RenderTable([]string{"#", "TASK", "QUANTITY", "TIME", "DIFFICULTY", "DAYS"}, rows))
	return b.String()
}
