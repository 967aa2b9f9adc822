package contract

import "time"

// GeneratePlanRequest asks the plan service to generate and store a plan.
type GeneratePlanRequest struct {
	GoalID    string
	Title     string    // defaults to the goal title
	WeekCount int       // 1-52
	StartDate time.Time // snapped to the Monday on or before it
}

// ImportPlanRequest asks the plan service to load and store a plan file.
type ImportPlanRequest struct {
	Path   string
	GoalID string // optional
}
