package cli

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/charmbracelet/huh"
)

// dateInput returns a huh.Input for an optional date field with YYYY-MM-DD validation.
func dateInput(title, placeholder string, value *string) *huh.Input {
	if placeholder == "" {
		placeholder = "2025-06-30"
	}
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateOptionalDate)
}

// clockInput returns a huh.Input for an optional HH:MM field.
func clockInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateOptionalClock)
}

// goalFormValues carries the string fields a goal form edits.
type goalFormValues struct {
	Title       string
	Description string
	Subject     string
	Target      string
}

func goalForm(v *goalFormValues) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewInput().Title("Goal").Placeholder("Pass HSK 4").Value(&v.Title).Validate(validateRequired("goal")),
			huh.NewInput().Title("Subject").Placeholder("chinese").Value(&v.Subject),
			huh.NewText().Title("Details").Value(&v.Description),
			dateInput("Target Date (YYYY-MM-DD, blank for none)", "", &v.Target),
		),
	)
}

// settingsFormValues is the editable form of domain.ScheduleSettings.
type settingsFormValues struct {
	Days     []int
	From     string
	To       string
	Timezone string
}

func newSettingsFormValues(s *domain.ScheduleSettings) *settingsFormValues {
	v := &settingsFormValues{Timezone: s.Timezone}
	for _, d := range s.SelectedWeekdays {
		v.Days = append(v.Days, int(d))
	}
	if s.EarliestStart != nil {
		v.From = s.EarliestStart.String()
	}
	if s.LatestEnd != nil {
		v.To = s.LatestEnd.String()
	}
	return v
}

// settings converts the form back. Weekdays come out in Sunday-first code
// order.
func (v *settingsFormValues) settings() (*domain.ScheduleSettings, error) {
	codes := make([]string, len(v.Days))
	for i, d := range v.Days {
		codes[i] = strconv.Itoa(d)
	}
	days, err := domain.ParseWeekdayList(strings.Join(codes, ","))
	if err != nil {
		return nil, err
	}

	s := &domain.ScheduleSettings{SelectedWeekdays: days, Timezone: v.Timezone}
	if v.From != "" {
		c, err := domain.ParseClock(v.From)
		if err != nil {
			return nil, err
		}
		s.EarliestStart = &c
	}
	if v.To != "" {
		c, err := domain.ParseClock(v.To)
		if err != nil {
			return nil, err
		}
		s.LatestEnd = &c
	}
	return s, nil
}

func settingsForm(v *settingsFormValues) *huh.Form {
	days := make([]huh.Option[int], 0, 7)
	for d := domain.Monday; d <= domain.Saturday; d++ {
		days = append(days, huh.NewOption(d.Time().String(), int(d)))
	}
	days = append(days, huh.NewOption(domain.Sunday.Time().String(), int(domain.Sunday)))

	return newForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Study Days").
				Options(days...).
				Value(&v.Days),
			clockInput("Earliest Start (HH:MM, blank for 18:00)", "18:00", &v.From),
			clockInput("Latest End (HH:MM, blank for 22:00)", "22:00", &v.To),
			huh.NewInput().
				Title("Time Zone (IANA name, blank for system)").
				Placeholder("Asia/Shanghai").
				Value(&v.Timezone).
				Validate(validateTimezone),
		),
	)
}

func apiKeyForm(key *string) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Anthropic API Key").
				EchoMode(huh.EchoModePassword).
				Value(key).
				Validate(validateRequired("API key")),
		),
	)
}
