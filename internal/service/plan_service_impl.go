package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/importer"
	"github.com/alexanderramin/studyplan/internal/intelligence"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/google/uuid"
)

// MaxPlanWeeks bounds generated plans.
const MaxPlanWeeks = 52

type planService struct {
	goals     repository.GoalRepo
	plans     repository.PlanRepo
	settings  repository.SettingsRepo
	uow       db.UnitOfWork
	generator PlanGenerator
	observer  UseCaseObserver
}

// NewPlanService wires plan storage. generator may be nil when no LLM
// provider is configured; Generate then fails with ErrGeneratorUnavailable.
func NewPlanService(
	goals repository.GoalRepo,
	plans repository.PlanRepo,
	settings repository.SettingsRepo,
	uow db.UnitOfWork,
	generator PlanGenerator,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		goals:     goals,
		plans:     plans,
		settings:  settings,
		uow:       uow,
		generator: generator,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Generate(ctx context.Context, req contract.GeneratePlanRequest) (plan *domain.Plan, err error) {
	fields := map[string]any{"goal": req.GoalID, "weeks": req.WeekCount}
	defer observe(ctx, s.observer, "generate-plan", fields, time.Now(), &err)

	if s.generator == nil {
		return nil, ErrGeneratorUnavailable
	}
	if req.WeekCount < 1 || req.WeekCount > MaxPlanWeeks {
		return nil, fmt.Errorf("week count must be between 1 and %d, got %d", MaxPlanWeeks, req.WeekCount)
	}

	goal, err := s.goals.GetByID(ctx, req.GoalID)
	if err != nil {
		return nil, err
	}
	cal, err := settingsCalendar(ctx, s.settings)
	if err != nil {
		return nil, err
	}

	start := req.StartDate
	if start.IsZero() {
		start = time.Now().In(cal.Location)
	}
	start = cal.MondayOnOrBefore(cal.DateOf(start))

	weeks, err := s.generator.Generate(ctx, intelligence.PlanRequest{
		Goal:      *goal,
		WeekCount: req.WeekCount,
		StartDate: start,
	})
	if err != nil {
		return nil, fmt.Errorf("generating plan: %w", err)
	}

	title := req.Title
	if title == "" {
		title = goal.Title
	}
	plan = &domain.Plan{
		ID:        uuid.New().String(),
		GoalID:    goal.ID,
		Title:     title,
		StartDate: start,
		WeekCount: len(weeks),
		Source:    domain.PlanGenerated,
		Weeks:     weeks,
		CreatedAt: nowUTC(),
	}
	if err := s.store(ctx, plan); err != nil {
		return nil, err
	}
	fields["plan"] = plan.ID
	fields["tasks"] = countTasks(plan)
	return plan, nil
}

func (s *planService) Import(ctx context.Context, req contract.ImportPlanRequest) (plan *domain.Plan, err error) {
	fields := map[string]any{"path": req.Path, "goal": req.GoalID}
	defer observe(ctx, s.observer, "import-plan", fields, time.Now(), &err)

	schema, err := importer.LoadPlanSchema(req.Path)
	if err != nil {
		return nil, fmt.Errorf("loading plan file: %w", err)
	}
	if errs := importer.ValidatePlanSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	if req.GoalID != "" {
		if _, err := s.goals.GetByID(ctx, req.GoalID); err != nil {
			return nil, err
		}
	}
	cal, err := settingsCalendar(ctx, s.settings)
	if err != nil {
		return nil, err
	}

	plan, err = importer.Convert(schema, req.GoalID, cal.Location)
	if err != nil {
		return nil, fmt.Errorf("converting plan file: %w", err)
	}
	if err := s.store(ctx, plan); err != nil {
		return nil, err
	}
	fields["plan"] = plan.ID
	fields["tasks"] = countTasks(plan)
	return plan, nil
}

// store writes the plan, its weeks and tasks atomically.
func (s *planService) store(ctx context.Context, plan *domain.Plan) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLitePlanRepo(tx).Create(ctx, plan); err != nil {
			return fmt.Errorf("storing plan: %w", err)
		}
		return nil
	})
}

func (s *planService) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	return s.plans.GetByID(ctx, id)
}

func (s *planService) List(ctx context.Context, goalID string) ([]*domain.Plan, error) {
	if goalID == "" {
		return s.plans.List(ctx)
	}
	return s.plans.ListByGoal(ctx, goalID)
}

func (s *planService) GetWeek(ctx context.Context, planID string, weekNumber int) (*domain.WeekPlan, error) {
	return s.plans.GetWeek(ctx, planID, weekNumber)
}

func (s *planService) Delete(ctx context.Context, id string) error {
	return s.plans.Delete(ctx, id)
}

func countTasks(p *domain.Plan) int {
	n := 0
	for _, w := range p.Weeks {
		n += len(w.Tasks)
	}
	return n
}
