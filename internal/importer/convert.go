package importer

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/scheduler"
	"github.com/google/uuid"
)

// Convert transforms a validated PlanSchema into a domain plan ready for
// persistence. Call ValidatePlanSchema first; Convert assumes the schema is
// valid. The plan start snaps to the Monday on or before start_date in loc.
func Convert(schema *PlanSchema, goalID string, loc *time.Location) (*domain.Plan, error) {
	cal := scheduler.NewCalendar(loc)

	start, err := time.ParseInLocation("2006-01-02", schema.Plan.StartDate, cal.Location)
	if err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}

	plan := &domain.Plan{
		ID:        uuid.New().String(),
		GoalID:    goalID,
		Title:     schema.Plan.Title,
		StartDate: cal.MondayOnOrBefore(start),
		Source:    domain.PlanImported,
		CreatedAt: time.Now().UTC(),
	}
	plan.Weeks = ConvertWeeks(schema.Weeks, plan.ID, plan.StartDate, cal)
	plan.WeekCount = len(plan.Weeks)
	return plan, nil
}

// ConvertWeeks turns imported weeks into week plans. Week n starts 7*(n-1)
// days after planStart and ends six days later. Task refs are replaced by
// fresh ids and dependency refs are remapped to match.
func ConvertWeeks(weeks []WeekImport, planID string, planStart time.Time, cal scheduler.Calendar) []domain.WeekPlan {
	refMap := make(map[string]string) // ref -> UUID
	for _, w := range weeks {
		for _, t := range w.Tasks {
			if t.ID != "" {
				refMap[t.ID] = uuid.New().String()
			}
		}
	}

	out := make([]domain.WeekPlan, 0, len(weeks))
	for _, w := range weeks {
		weekStart := cal.AddDays(planStart, 7*(w.WeekNumber-1))
		wp := domain.WeekPlan{
			ID:                 uuid.New().String(),
			PlanID:             planID,
			WeekNumber:         w.WeekNumber,
			StartDate:          weekStart,
			EndDate:            cal.AddDays(weekStart, 6),
			Milestones:         w.Milestones,
			TaskCountHint:      w.TaskCount,
			EstimatedHoursHint: w.EstimatedHours,
		}
		for _, t := range w.Tasks {
			wp.Tasks = append(wp.Tasks, convertTask(t, refMap))
		}
		out = append(out, wp)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].WeekNumber < out[j].WeekNumber })
	return out
}

func convertTask(t TaskImport, refMap map[string]string) domain.Task {
	id, ok := refMap[t.ID]
	if !ok {
		id = uuid.New().String()
	}

	difficulty := domain.DifficultyMedium
	if t.Difficulty != "" {
		if d, err := domain.ParseDifficulty(t.Difficulty); err == nil {
			difficulty = d
		}
	}

	var weekdays []domain.Weekday
	if len(t.PreferredWeekdays) > 0 {
		weekdays, _ = domain.ParseWeekdayList(strings.Join(t.PreferredWeekdays, ","))
	}

	var deps []string
	for _, ref := range t.Dependencies {
		if mapped, ok := refMap[ref]; ok {
			deps = append(deps, mapped)
		}
	}

	duration := ResolveDuration(t.EstimatedDuration, t.Duration)
	label := t.Duration
	if label == "" {
		label = scheduler.FormatDurationLabel(int(duration / time.Minute))
	}

	return domain.Task{
		ID:                 id,
		Title:              t.Title,
		Description:        t.Description,
		Quantity:           t.Quantity,
		DurationLabel:      label,
		EstimatedDuration:  duration,
		Difficulty:         difficulty,
		PreferredWeekdays:  weekdays,
		PreferredTimeSlots: t.PreferredTimeSlots,
		Dependencies:       deps,
	}
}
