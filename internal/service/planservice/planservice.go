package planservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/gymstack/gymcore/internal/domain"
)

type Repo interface {
	CreateActivityType(ctx context.Context, activity *domain.ActivityType) (*domain.ActivityType, error)
	ListActivityTypes(ctx context.Context) ([]domain.ActivityType, error)
	CreatePlan(ctx context.Context, plan *domain.Plan) (*domain.Plan, error)
	GetPlanByID(ctx context.Context, id int) (*domain.Plan, error)
	ListPlans(ctx context.Context) ([]domain.Plan, error)
}

var (
	ErrInvalidPlan  = errors.New("plan must have a positive duration and a non-negative price")
	ErrPlanNotFound = errors.New("membership plan not found")
)

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) CreateActivityType(ctx context.Context, name, description string) (*domain.ActivityType, error) {
	if name == "" {
		return nil, ErrInvalidPlan
	}
	activity := &domain.ActivityType{
		Name:        name,
		Description: description,
	}
	created, err := s.repo.CreateActivityType(ctx, activity)
	if err != nil {
		zap.L().Error("can't create activity type", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) ListActivityTypes(ctx context.Context) ([]domain.ActivityType, error) {
	activities, err := s.repo.ListActivityTypes(ctx)
	if err != nil {
		zap.L().Error("failed to fetch activity types", zap.Error(err))
		return nil, err
	}
	return activities, nil
}

func (s *Service) CreatePlan(ctx context.Context, plan *domain.Plan) (*domain.Plan, error) {
	if plan.DurationDays <= 0 || plan.Price < 0 {
		return nil, ErrInvalidPlan
	}
	created, err := s.repo.CreatePlan(ctx, plan)
	if err != nil {
		zap.L().Error("can't create plan", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetPlan(ctx context.Context, id int) (*domain.Plan, error) {
	plan, err := s.repo.GetPlanByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find plan", zap.Error(err))
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

func (s *Service) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	plans, err := s.repo.ListPlans(ctx)
	if err != nil {
		zap.L().Error("failed to fetch plans", zap.Error(err))
		return nil, err
	}
	return plans, nil
}
