package scheduler

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// Calendar pins the time zone used for all day and weekday arithmetic so
// results never depend on the process's local zone.
type Calendar struct {
	Location *time.Location
}

// NewCalendar returns a Calendar in loc; nil means UTC.
func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{Location: loc}
}

func (c Calendar) loc() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// DayStart returns midnight of t's calendar day.
func (c Calendar) DayStart(t time.Time) time.Time {
	t = t.In(c.loc())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc())
}

// AddDays moves by whole calendar days, staying at local midnight across
// DST changes.
func (c Calendar) AddDays(t time.Time, n int) time.Time {
	return c.DayStart(t).AddDate(0, 0, n)
}

// WeekdayCode returns the Sunday-first weekday code of t.
func (c Calendar) WeekdayCode(t time.Time) domain.Weekday {
	return domain.WeekdayOf(t.In(c.loc()).Weekday())
}

// AvailableDays returns the offsets (0 = weekStart ... 6) whose weekday is
// selected. For a week that starts on Sunday, offset n is weekday code n+1.
func (c Calendar) AvailableDays(weekStart time.Time, settings domain.ScheduleSettings) []int {
	var offsets []int
	for offset := 0; offset < 7; offset++ {
		if settings.IsSelected(c.WeekdayCode(c.AddDays(weekStart, offset))) {
			offsets = append(offsets, offset)
		}
	}
	return offsets
}

// MondayOnOrBefore returns the Monday starting the week that contains t.
func (c Calendar) MondayOnOrBefore(t time.Time) time.Time {
	day := c.DayStart(t)
	back := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -back)
}

// DateOf returns local midnight of the calendar date written in t, ignoring
// t's own zone. Stored dates come back as UTC midnight.
func (c Calendar) DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc())
}
