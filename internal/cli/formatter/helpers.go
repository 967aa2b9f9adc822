package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDateFrom returns a human-friendly relative date string from a reference time.
func RelativeDateFrom(t time.Time, now time.Time) string {
	days := int(math.Round(t.Sub(now).Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// Date renders a stored calendar date ("Mon Mar 10").
func Date(t time.Time) string {
	return t.Format("Mon Jan 2")
}

// DateRange renders "Mar 10 - Mar 16".
func DateRange(from, to time.Time) string {
	return from.Format("Jan 2") + " - " + to.Format("Jan 2")
}

// ClockRange renders "18:00-18:30" in the times' own zone.
func ClockRange(from, to time.Time) string {
	return from.Format("15:04") + "-" + to.Format("15:04")
}

// TaskStatusPill returns a colored indicator for a scheduled task status.
func TaskStatusPill(status domain.ScheduledTaskStatus) string {
	switch status {
	case domain.ScheduledPending:
		return StyleBlue.Render("○ pending")
	case domain.ScheduledDone:
		return StyleGreen.Render("✔ done")
	case domain.ScheduledSkipped:
		return StyleDim.Render("⊘ skipped")
	default:
		return StyleDim.Render(string(status))
	}
}

// SubjectBadge returns a capitalized, purple-styled subject label.
func SubjectBadge(s string) string {
	if s == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(strings.ToUpper(s[:1]) + s[1:])
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatDuration renders d with FormatMinutes.
func FormatDuration(d time.Duration) string {
	return FormatMinutes(int(d.Minutes()))
}
