package scheduler

import (
	"fmt"
	"math"
	"time"
)

// StandardIncrements are the durations, in minutes, a day's share of a task
// is snapped to.
var StandardIncrements = []int{15, 30, 45, 60, 75, 90}

// StandardizeMinutes snaps raw minutes to the nearest standard increment.
// Ties go to the smaller candidate, so 80 becomes 75.
func StandardizeMinutes(minutes int) int {
	best := StandardIncrements[0]
	bestDist := absInt(minutes - best)
	for _, c := range StandardIncrements[1:] {
		if d := absInt(minutes - c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// SplitMinutes divides total minutes over days parts. The first total%days
// parts get one extra minute, so the parts always sum to total.
func SplitMinutes(total, days int) []int {
	if days <= 0 {
		return nil
	}
	base := total / days
	remainder := total % days
	parts := make([]int, days)
	for i := range parts {
		parts[i] = base
		if i < remainder {
			parts[i]++
		}
	}
	return parts
}

// OptimalDayCount is the number of days a task of duration d should be
// spread across.
func OptimalDayCount(d time.Duration) int {
	hours := d.Hours()
	switch {
	case hours <= 0.5:
		return 1
	case hours <= 2.0:
		return 2
	case hours <= 3.0:
		return 3
	case hours <= 4.0:
		return 4
	default:
		return 5
	}
}

// taskMinutes converts a duration to whole minutes, never less than one.
func taskMinutes(d time.Duration) int {
	m := int(math.Round(d.Minutes()))
	if m < 1 {
		return 1
	}
	return m
}

// FormatDurationLabel renders minutes the way task labels show them:
// "45 min", "1 h", "1 h 15 min".
func FormatDurationLabel(minutes int) string {
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%d min", m)
	case m == 0:
		return fmt.Sprintf("%d h", h)
	default:
		return fmt.Sprintf("%d h %d min", h, m)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
