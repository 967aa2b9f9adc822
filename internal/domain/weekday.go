package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Weekday is a Sunday-first weekday code: 1 = Sunday ... 7 = Saturday.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// WeekdayOf converts a time.Weekday (0 = Sunday) to its code.
func WeekdayOf(wd time.Weekday) Weekday {
	return Weekday(int(wd) + 1)
}

func (w Weekday) Valid() bool {
	return w >= Sunday && w <= Saturday
}

// Time returns the equivalent time.Weekday.
func (w Weekday) Time() time.Weekday {
	return time.Weekday(int(w) - 1)
}

func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return w.Time().String()[:3]
}

var weekdayNames = map[string]Weekday{
	"sun": Sunday, "sunday": Sunday, "周日": Sunday, "星期日": Sunday, "周天": Sunday,
	"mon": Monday, "monday": Monday, "周一": Monday, "星期一": Monday,
	"tue": Tuesday, "tuesday": Tuesday, "周二": Tuesday, "星期二": Tuesday,
	"wed": Wednesday, "wednesday": Wednesday, "周三": Wednesday, "星期三": Wednesday,
	"thu": Thursday, "thursday": Thursday, "周四": Thursday, "星期四": Thursday,
	"fri": Friday, "friday": Friday, "周五": Friday, "星期五": Friday,
	"sat": Saturday, "saturday": Saturday, "周六": Saturday, "星期六": Saturday,
}

// ParseWeekday accepts an English or Chinese day name, or a numeric code 1-7.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if wd, ok := weekdayNames[s]; ok {
		return wd, nil
	}
	n, err := strconv.Atoi(s)
	if err == nil && Weekday(n).Valid() {
		return Weekday(n), nil
	}
	return 0, fmt.Errorf("invalid weekday %q", s)
}

// ParseWeekdayList parses a comma-separated list of weekdays. Duplicates are
// collapsed and the result is sorted by code.
func ParseWeekdayList(s string) ([]Weekday, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	seen := make(map[Weekday]bool)
	var out []Weekday
	for _, part := range strings.Split(s, ",") {
		wd, err := ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		if !seen[wd] {
			seen[wd] = true
			out = append(out, wd)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// FormatWeekdays renders codes as "Mon,Wed,Fri".
func FormatWeekdays(days []Weekday) string {
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()
	}
	return strings.Join(names, ",")
}
