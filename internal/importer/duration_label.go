package importer

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultTaskDuration is used when a task carries neither a positive
// estimated_duration nor a parseable duration label.
const DefaultTaskDuration = time.Hour

var (
	hoursPattern   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(小时|个小时|hours?|hrs?|h)`)
	minutesPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(分钟|分|minutes?|mins?|m)`)
)

// ParseDurationLabel reads free-text labels such as "30分钟", "1.5小时",
// "1小时30分钟", "半小时", "45 min", "2h" or "1h30m". ok is false when the
// label holds no recognisable duration.
func ParseDurationLabel(label string) (d time.Duration, ok bool) {
	s := strings.ToLower(strings.TrimSpace(label))
	if s == "" {
		return 0, false
	}
	if strings.Contains(s, "半小时") || strings.Contains(s, "half an hour") || strings.Contains(s, "half hour") {
		d += 30 * time.Minute
		ok = true
	}

	// Hour matches are removed first so "h" in "1h30m" cannot be read twice.
	for _, m := range hoursPattern.FindAllStringSubmatch(s, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		d += time.Duration(math.Round(v * 60)) * time.Minute
		ok = true
	}
	rest := hoursPattern.ReplaceAllString(s, " ")

	for _, m := range minutesPattern.FindAllStringSubmatch(rest, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		d += time.Duration(math.Round(v)) * time.Minute
		ok = true
	}

	if !ok || d <= 0 {
		return 0, false
	}
	return d, true
}

// ResolveDuration picks a task's estimated duration: positive seconds win,
// then the parsed label, then DefaultTaskDuration.
func ResolveDuration(seconds *float64, label string) time.Duration {
	if seconds != nil && *seconds > 0 {
		return time.Duration(math.Round(*seconds)) * time.Second
	}
	if d, ok := ParseDurationLabel(label); ok {
		return d
	}
	return DefaultTaskDuration
}
