package domain

import "time"

type Goal struct {
	ID          string
	Title       string
	Description string
	Subject     string
	TargetDate  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Plan is a multi-week study plan for a goal.
type Plan struct {
	ID        string
	GoalID    string
	Title     string
	StartDate time.Time
	WeekCount int
	Source    PlanSource
	Weeks     []WeekPlan
	CreatedAt time.Time
}

// Week returns the week plan with the given 1-based number, or nil.
func (p *Plan) Week(number int) *WeekPlan {
	for i := range p.Weeks {
		if p.Weeks[i].WeekNumber == number {
			return &p.Weeks[i]
		}
	}
	return nil
}
