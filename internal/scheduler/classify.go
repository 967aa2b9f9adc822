package scheduler

import (
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// DistributionType describes how a task should be spread over a week.
type DistributionType string

const (
	DistributionDaily     DistributionType = "daily"
	DistributionWeekly    DistributionType = "weekly"
	DistributionIntensive DistributionType = "intensive"
)

// dailyMarkers flag short tasks meant to be repeated every study day.
var dailyMarkers = []string{"每日", "每天", "天天", "daily", "every day", "each day", "everyday"}

// Classify picks a distribution pattern by duration, using the description
// only to separate short daily drills from short one-off tasks.
//
//	≤ 30 min       weekly, or daily when the description says so
//	30 min – 2 h   weekly
//	> 2 h          intensive
func Classify(task domain.Task) DistributionType {
	hours := task.EstimatedDuration.Hours()
	switch {
	case hours <= 0.5:
		if hasDailyMarker(task.Description) {
			return DistributionDaily
		}
		return DistributionWeekly
	case hours <= 2.0:
		return DistributionWeekly
	default:
		return DistributionIntensive
	}
}

func hasDailyMarker(s string) bool {
	lower := strings.ToLower(s)
	for _, m := range dailyMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
