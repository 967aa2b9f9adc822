package contract

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

type UnscheduledCode string

const (
	UnscheduledNoAvailableDays  UnscheduledCode = "NO_AVAILABLE_DAYS"
	UnscheduledEmptyWindow      UnscheduledCode = "EMPTY_WINDOW"
	UnscheduledCapacityExceeded UnscheduledCode = "CAPACITY_EXCEEDED"
	UnscheduledInvalidDuration  UnscheduledCode = "INVALID_DURATION"
)

// UnscheduledTask reports a task or sub-task the scheduler could not place.
type UnscheduledTask struct {
	Task         domain.Task
	SourceTaskID string
	Part         int
	Parts        int
	Date         *time.Time // nil when the failure is not tied to a day
	Code         UnscheduledCode
	Message      string
}

// ScheduleRequest is the input of one weekly scheduling pass.
type ScheduleRequest struct {
	WeekPlan  domain.WeekPlan
	WeekStart time.Time
	GoalID    string
	PlanID    string
	Settings  *domain.ScheduleSettings // nil uses domain.DefaultScheduleSettings
}

// ScheduleResult carries both placed tasks and the work that did not fit.
type ScheduleResult struct {
	Scheduled   []domain.ScheduledTask
	Unscheduled []UnscheduledTask
}

// Complete reports whether every piece of work was placed.
func (r ScheduleResult) Complete() bool {
	return len(r.Unscheduled) == 0
}

// ScheduledMinutes sums the scheduled durations.
func (r ScheduleResult) ScheduledMinutes() int {
	total := 0
	for i := range r.Scheduled {
		total += int(r.Scheduled[i].Duration().Minutes())
	}
	return total
}

// ScheduleWeekRequest asks the schedule service to place a stored week.
type ScheduleWeekRequest struct {
	PlanID     string
	WeekNumber int
	Replace    bool                     // drop previously scheduled tasks for the week first
	Settings   *domain.ScheduleSettings // nil loads the stored settings
}

// ScheduleWeekResponse is the persisted outcome of a ScheduleWeekRequest.
type ScheduleWeekResponse struct {
	PlanID      string
	WeekNumber  int
	WeekStart   time.Time
	Result      ScheduleResult
	GeneratedAt time.Time
}
