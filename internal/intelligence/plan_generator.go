package intelligence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/importer"
	"github.com/alexanderramin/studyplan/internal/llm"
	"github.com/alexanderramin/studyplan/internal/scheduler"
	"github.com/tidwall/gjson"
)

// ErrEmptyPlan is returned when the model answers with no usable tasks.
var ErrEmptyPlan = errors.New("generated plan has no tasks")

// weekPaths are the places generators have been seen to put the weeks array.
var weekPaths = []string{"weeks", "plan.weeks", "data.weeks", "study_plan.weeks"}

// PlanRequest describes the plan to generate. StartDate is the Monday the
// plan starts on; its location pins week dates.
type PlanRequest struct {
	Goal      domain.Goal
	WeekCount int
	StartDate time.Time
}

// PlanGenerator turns a goal into week plans using an LLM.
type PlanGenerator struct {
	client llm.LLMClient
}

func NewPlanGenerator(client llm.LLMClient) *PlanGenerator {
	return &PlanGenerator{client: client}
}

// Generate asks the model for WeekCount weeks of tasks and converts the
// answer into week plans. Weeks beyond WeekCount are dropped. Tasks without
// a positive estimated_duration fall back to their duration label.
func (g *PlanGenerator) Generate(ctx context.Context, req PlanRequest) ([]domain.WeekPlan, error) {
	if req.WeekCount < 1 {
		return nil, fmt.Errorf("week count must be positive, got %d", req.WeekCount)
	}

	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPlanGenerate,
		SystemPrompt: planSystemPrompt,
		UserPrompt:   buildPlanPrompt(req),
	})
	if err != nil {
		return nil, fmt.Errorf("llm plan generation failed: %w", err)
	}

	weeks, err := parseWeeks(resp.Text, req.WeekCount)
	if err != nil {
		return nil, err
	}

	cal := scheduler.NewCalendar(req.StartDate.Location())
	plans := importer.ConvertWeeks(weeks, "", cal.DayStart(req.StartDate), cal)
	for _, w := range plans {
		if len(w.Tasks) > 0 {
			return plans, nil
		}
	}
	return nil, ErrEmptyPlan
}

func buildPlanPrompt(req PlanRequest) string {
	target := "none"
	if req.Goal.TargetDate != nil {
		target = req.Goal.TargetDate.Format("2006-01-02")
	}
	return fmt.Sprintf(planUserPromptTemplate,
		req.Goal.Title,
		orNone(req.Goal.Description),
		orNone(req.Goal.Subject),
		req.WeekCount,
		req.StartDate.Format("2006-01-02"),
		target,
	)
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

// parseWeeks locates the weeks array in the model output, numbers weeks the
// model left unnumbered and validates the result.
func parseWeeks(text string, weekCount int) ([]importer.WeekImport, error) {
	doc, err := llm.ExtractJSONText(text)
	if err != nil {
		return nil, err
	}

	raw := ""
	root := gjson.Parse(doc)
	if root.IsArray() {
		raw = root.Raw
	} else {
		for _, path := range weekPaths {
			if r := root.Get(path); r.IsArray() {
				raw = r.Raw
				break
			}
		}
	}
	if raw == "" {
		return nil, fmt.Errorf("%w: no weeks array in response", llm.ErrInvalidOutput)
	}

	weeks, err := llm.ExtractJSON[[]importer.WeekImport](raw, nil)
	if err != nil {
		return nil, err
	}
	if len(weeks) == 0 {
		return nil, ErrEmptyPlan
	}

	kept := weeks[:0]
	for i := range weeks {
		if weeks[i].WeekNumber == 0 {
			weeks[i].WeekNumber = i + 1
		}
		if weeks[i].WeekNumber <= weekCount {
			kept = append(kept, weeks[i])
		}
	}
	if errs := importer.ValidateWeeks(kept); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %v", llm.ErrInvalidOutput, errors.Join(errs...))
	}
	return kept, nil
}
