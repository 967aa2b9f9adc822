package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/scheduler"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context) (*domain.ScheduleSettings, error) {
	return loadSettings(ctx, s.settings)
}

func (s *settingsService) Update(ctx context.Context, settings *domain.ScheduleSettings) error {
	if err := validateSettings(settings); err != nil {
		return err
	}
	return s.settings.Upsert(ctx, settings)
}

func validateSettings(s *domain.ScheduleSettings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if s.EarliestStart != nil && s.LatestEnd != nil && s.EarliestStart.Minutes() >= s.LatestEnd.Minutes() {
		return fmt.Errorf("%w: earliest start %s must be before latest end %s",
			ErrInvalidSettings, s.EarliestStart, s.LatestEnd)
	}
	return nil
}

// loadSettings returns stored settings, falling back to the defaults.
func loadSettings(ctx context.Context, repo repository.SettingsRepo) (*domain.ScheduleSettings, error) {
	stored, err := repo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		def := domain.DefaultScheduleSettings()
		return &def, nil
	}
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// calendarFor pins scheduling to the settings' time zone.
func calendarFor(s *domain.ScheduleSettings) (scheduler.Calendar, error) {
	loc, err := domain.LoadLocation(s.Timezone)
	if err != nil {
		return scheduler.Calendar{}, fmt.Errorf("%w: timezone %q: %v", ErrInvalidSettings, s.Timezone, err)
	}
	return scheduler.NewCalendar(loc), nil
}

// settingsCalendar loads settings and returns the calendar they imply.
func settingsCalendar(ctx context.Context, repo repository.SettingsRepo) (scheduler.Calendar, error) {
	settings, err := loadSettings(ctx, repo)
	if err != nil {
		return scheduler.Calendar{}, err
	}
	return calendarFor(settings)
}

func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
