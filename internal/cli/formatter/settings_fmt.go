package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// FormatSettings renders the study availability settings.
func FormatSettings(s *domain.ScheduleSettings) string {
	start, end := s.Window()
	tz := s.Timezone
	if tz == "" {
		tz = "Local"
	}
	days := domain.FormatWeekdays(s.SelectedWeekdays)
	if days == "" {
		days = StyleYellow.Render("none")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Dim("days    "), days)
	fmt.Fprintf(&b, "%s %s-%s%s\n", Dim("window  "), start, end, defaultMark(s.EarliestStart == nil && s.LatestEnd == nil))
	fmt.Fprintf(&b, "%s %s\n", Dim("timezone"), tz)
	return RenderBox("Study settings", strings.TrimRight(b.String(), "\n"))
}

func defaultMark(isDefault bool) string {
	if !isDefault {
		return ""
	}
	return " " + Dim("(default)")
}
