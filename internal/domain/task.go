package domain

import "time"

// Task is a learning task described by duration and difficulty, not yet
// bound to a calendar time.
type Task struct {
	ID                 string
	Title              string
	Description        string
	Quantity           string
	DurationLabel      string
	EstimatedDuration  time.Duration
	Difficulty         Difficulty
	PreferredWeekdays  []Weekday
	PreferredTimeSlots []string
	Dependencies       []string
}

// Clone returns a deep copy so sub-tasks never share slices with their source.
func (t Task) Clone() Task {
	c := t
	if t.PreferredWeekdays != nil {
		c.PreferredWeekdays = append([]Weekday(nil), t.PreferredWeekdays...)
	}
	if t.PreferredTimeSlots != nil {
		c.PreferredTimeSlots = append([]string(nil), t.PreferredTimeSlots...)
	}
	if t.Dependencies != nil {
		c.Dependencies = append([]string(nil), t.Dependencies...)
	}
	return c
}

// WeekPlan is one calendar week of a larger multi-week plan.
type WeekPlan struct {
	ID                 string
	PlanID             string
	WeekNumber         int
	StartDate          time.Time
	EndDate            time.Time
	Tasks              []Task
	Milestones         []string
	TaskCountHint      int
	EstimatedHoursHint float64
}

// TotalDuration sums the estimated durations of all tasks in the week.
func (w *WeekPlan) TotalDuration() time.Duration {
	var total time.Duration
	for _, t := range w.Tasks {
		total += t.EstimatedDuration
	}
	return total
}

// ScheduledTask is a Task bound to a concrete start and end timestamp.
type ScheduledTask struct {
	ID string
	Task

	SourceTaskID   string
	Part           int
	Parts          int
	GoalID         string
	PlanID         string
	WeekPlanID     string
	WeekNumber     int
	ScheduledStart time.Time
	ScheduledEnd   time.Time
	Status         ScheduledTaskStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *ScheduledTask) Duration() time.Duration {
	return s.ScheduledEnd.Sub(s.ScheduledStart)
}
