package planrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/gymstack/gymcore/internal/domain"
	"github.com/gymstack/gymcore/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateActivityType(ctx context.Context, activity *domain.ActivityType) (*domain.ActivityType, error) {
	query := `
        INSERT INTO activity_types (name, description)
        VALUES ($1, $2)
        RETURNING id, is_active, created_at
    `
	err := r.db.QueryRow(ctx, query, activity.Name, activity.Description).
		Scan(&activity.ID, &activity.IsActive, &activity.CreatedAt)
	if err != nil {
		zap.L().Error("can't save activity type", zap.Error(err))
		return nil, err
	}
	return activity, nil
}

func (r *Repository) ListActivityTypes(ctx context.Context) ([]domain.ActivityType, error) {
	query := `
        SELECT id, name, description, is_active, created_at
        FROM activity_types
        WHERE is_active
        ORDER BY name
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list activity types", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var activities []domain.ActivityType
	for rows.Next() {
		var a domain.ActivityType
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.IsActive, &a.CreatedAt); err != nil {
			zap.L().Error("can't scan activity type row", zap.Error(err))
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, nil
}

func (r *Repository) CreatePlan(ctx context.Context, plan *domain.Plan) (*domain.Plan, error) {
	query := `
        INSERT INTO membership_plans (activity_type_id, name, duration_days, price)
        VALUES ($1, $2, $3, $4)
        RETURNING id, is_active, created_at
    `
	err := r.db.QueryRow(ctx, query, plan.ActivityTypeID, plan.Name, plan.DurationDays, plan.Price).
		Scan(&plan.ID, &plan.IsActive, &plan.CreatedAt)
	if err != nil {
		zap.L().Error("can't save plan", zap.Error(err))
		return nil, err
	}
	return plan, nil
}

func (r *Repository) GetPlanByID(ctx context.Context, id int) (*domain.Plan, error) {
	query := `
        SELECT id, activity_type_id, name, duration_days, price, is_active, created_at
        FROM membership_plans
        WHERE id = $1
    `
	var plan domain.Plan
	err := r.db.QueryRow(ctx, query, id).
		Scan(&plan.ID, &plan.ActivityTypeID, &plan.Name, &plan.DurationDays, &plan.Price, &plan.IsActive, &plan.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find plan", zap.Error(err))
		return nil, err
	}
	return &plan, nil
}

func (r *Repository) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	query := `
        SELECT id, activity_type_id, name, duration_days, price, is_active, created_at
        FROM membership_plans
        WHERE is_active
        ORDER BY activity_type_id, duration_days
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list plans", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var plans []domain.Plan
	for rows.Next() {
		var p domain.Plan
		if err := rows.Scan(&p.ID, &p.ActivityTypeID, &p.Name, &p.DurationDays, &p.Price, &p.IsActive, &p.CreatedAt); err != nil {
			zap.L().Error("can't scan plan row", zap.Error(err))
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}
