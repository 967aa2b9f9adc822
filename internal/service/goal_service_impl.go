package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/google/uuid"
)

type goalService struct {
	goals repository.GoalRepo
}

func NewGoalService(goals repository.GoalRepo) GoalService {
	return &goalService{goals: goals}
}

func (s *goalService) Create(ctx context.Context, g *domain.Goal) error {
	g.Title = strings.TrimSpace(g.Title)
	if g.Title == "" {
		return fmt.Errorf("goal title is required")
	}
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	now := nowUTC()
	g.CreatedAt = now
	g.UpdatedAt = now
	return s.goals.Create(ctx, g)
}

func (s *goalService) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	return s.goals.GetByID(ctx, id)
}

func (s *goalService) List(ctx context.Context) ([]*domain.Goal, error) {
	return s.goals.List(ctx)
}

func (s *goalService) Update(ctx context.Context, g *domain.Goal) error {
	if strings.TrimSpace(g.Title) == "" {
		return fmt.Errorf("goal title is required")
	}
	g.UpdatedAt = nowUTC()
	return s.goals.Update(ctx, g)
}

// Delete removes the goal together with its plans and scheduled tasks.
func (s *goalService) Delete(ctx context.Context, id string) error {
	return s.goals.Delete(ctx, id)
}
