package formatter

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// FormatGoalList renders goals as a table. now anchors the target column.
func FormatGoalList(goals []*domain.Goal, now time.Time) string {
	if len(goals) == 0 {
		return Dim("No goals yet. Add one with: studyplan goal add --title ...") + "\n"
	}

	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		target := Dim("--")
		if g.TargetDate != nil {
			target = g.TargetDate.Format("2006-01-02") + " " + Dim("("+RelativeDateFrom(*g.TargetDate, now)+")")
		}
		rows = append(rows, []string{TruncID(g.ID), Bold(g.Title), SubjectBadge(g.Subject), target})
	}
	return RenderTable([]string{"ID", "GOAL", "SUBJECT", "TARGET"}, rows)
}
