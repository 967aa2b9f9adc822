package domain

import (
	"fmt"
	"time"
)

// ClockTime is a wall-clock time of day.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClock parses "HH:MM".
func ParseClock(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid time %q (expected HH:MM): %w", s, err)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Minutes returns minutes since midnight.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// On returns this clock time on the calendar day of date, in loc.
func (c ClockTime) On(date time.Time, loc *time.Location) time.Time {
	d := date.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour, c.Minute, 0, 0, loc)
}

var (
	DefaultEarliestStart = ClockTime{Hour: 18}
	DefaultLatestEnd     = ClockTime{Hour: 22}
)

// ScheduleSettings holds the user's study availability.
type ScheduleSettings struct {
	SelectedWeekdays []Weekday
	EarliestStart    *ClockTime
	LatestEnd        *ClockTime
	Timezone         string
}

// DefaultScheduleSettings selects Monday-Friday with no explicit times.
func DefaultScheduleSettings() ScheduleSettings {
	return ScheduleSettings{
		SelectedWeekdays: []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday},
	}
}

// IsSelected reports whether the weekday is available for study.
func (s ScheduleSettings) IsSelected(wd Weekday) bool {
	for _, d := range s.SelectedWeekdays {
		if d == wd {
			return true
		}
	}
	return false
}

// Window returns the daily study window, falling back to 18:00-22:00 for
// unset bounds.
func (s ScheduleSettings) Window() (ClockTime, ClockTime) {
	start, end := DefaultEarliestStart, DefaultLatestEnd
	if s.EarliestStart != nil {
		start = *s.EarliestStart
	}
	if s.LatestEnd != nil {
		end = *s.LatestEnd
	}
	return start, end
}

// Validate checks weekday codes, clock ranges and timezone.
func (s ScheduleSettings) Validate() error {
	for _, d := range s.SelectedWeekdays {
		if !d.Valid() {
			return fmt.Errorf("weekday code %d out of range 1-7", int(d))
		}
	}
	for _, c := range []*ClockTime{s.EarliestStart, s.LatestEnd} {
		if c == nil {
			continue
		}
		if c.Hour < 0 || c.Hour > 23 || c.Minute < 0 || c.Minute > 59 {
			return fmt.Errorf("clock time %s out of range", c)
		}
	}
	if _, err := LoadLocation(s.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", s.Timezone, err)
	}
	return nil
}

// LoadLocation resolves an IANA name; "" and "Local" mean the system zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
