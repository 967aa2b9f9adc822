package cli

import (
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/spf13/pflag"
)

// weekdaysValue is a pflag.Value for "mon,wed,fri" style weekday sets.
// Chinese day names and numeric codes 1-7 (1 = Sunday) are accepted too.
type weekdaysValue struct {
	days *[]domain.Weekday
}

var _ pflag.Value = (*weekdaysValue)(nil)

func newWeekdaysValue(p *[]domain.Weekday) *weekdaysValue {
	return &weekdaysValue{days: p}
}

func (v *weekdaysValue) String() string {
	if v.days == nil {
		return ""
	}
	return domain.FormatWeekdays(*v.days)
}

func (v *weekdaysValue) Set(s string) error {
	days, err := domain.ParseWeekdayList(s)
	if err != nil {
		return err
	}
	*v.days = days
	return nil
}

func (v *weekdaysValue) Type() string {
	return "weekdays"
}

// clockValue is a pflag.Value for "HH:MM" times of day.
type clockValue struct {
	clock **domain.ClockTime
}

var _ pflag.Value = (*clockValue)(nil)

func newClockValue(p **domain.ClockTime) *clockValue {
	return &clockValue{clock: p}
}

func (v *clockValue) String() string {
	if v.clock == nil || *v.clock == nil {
		return ""
	}
	return (*v.clock).String()
}

func (v *clockValue) Set(s string) error {
	c, err := domain.ParseClock(s)
	if err != nil {
		return err
	}
	*v.clock = &c
	return nil
}

func (v *clockValue) Type() string {
	return "HH:MM"
}

// availabilityFlags binds --days, --from and --to and applies whichever were
// given on top of base settings.
type availabilityFlags struct {
	days []domain.Weekday
	from *domain.ClockTime
	to   *domain.ClockTime
}

func (f *availabilityFlags) register(fs *pflag.FlagSet) {
	fs.Var(newWeekdaysValue(&f.days), "days", "Study days, e.g. mon,wed,fri")
	fs.Var(newClockValue(&f.from), "from", "Earliest start time (HH:MM)")
	fs.Var(newClockValue(&f.to), "to", "Latest end time (HH:MM)")
}

func (f *availabilityFlags) changed(fs *pflag.FlagSet) bool {
	return fs.Changed("days") || fs.Changed("from") || fs.Changed("to")
}

func (f *availabilityFlags) apply(fs *pflag.FlagSet, s *domain.ScheduleSettings) {
	if fs.Changed("days") {
		s.SelectedWeekdays = f.days
	}
	if fs.Changed("from") {
		s.EarliestStart = f.from
	}
	if fs.Changed("to") {
		s.LatestEnd = f.to
	}
}
