package paymentrepo

import (
	"context"
	"time"

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

func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
        INSERT INTO payments (member_id, plan_id, amount, method, payment_date,
            period_start, period_end, notes, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		payment.MemberID, payment.PlanID, payment.Amount, payment.Method, payment.PaymentDate,
		payment.PeriodStart, payment.PeriodEnd, payment.Notes, payment.CreatedBy,
	).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		zap.L().Error("can't save payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (r *Repository) FindByMemberID(ctx context.Context, memberID int) ([]domain.Payment, error) {
	query := `
        SELECT id, member_id, plan_id, amount, method, payment_date,
            period_start, period_end, notes, created_by, created_at
        FROM payments
        WHERE member_id = $1
        ORDER BY payment_date DESC, created_at DESC
    `
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		zap.L().Error("can't get payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		err := rows.Scan(&p.ID, &p.MemberID, &p.PlanID, &p.Amount, &p.Method, &p.PaymentDate,
			&p.PeriodStart, &p.PeriodEnd, &p.Notes, &p.CreatedBy, &p.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}

func (r *Repository) FindRecent(ctx context.Context, limit int) ([]domain.Payment, error) {
	query := `
        SELECT id, member_id, plan_id, amount, method, payment_date,
            period_start, period_end, notes, created_by, created_at
        FROM payments
        ORDER BY created_at DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		err := rows.Scan(&p.ID, &p.MemberID, &p.PlanID, &p.Amount, &p.Method, &p.PaymentDate,
			&p.PeriodStart, &p.PeriodEnd, &p.Notes, &p.CreatedBy, &p.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}

// SumBetween is scoped strictly to [from, to): a payment recorded outside
// the window never counts, even when its subscription period overlaps it.
func (r *Repository) SumBetween(ctx context.Context, from, to time.Time) (float64, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM payments
        WHERE created_at >= $1 AND created_at < $2
    `
	var total float64
	if err := r.db.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		zap.L().Error("can't sum payments", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) SumAll(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments`
	var total float64
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		zap.L().Error("can't sum payments", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// PendingDebtBetween sums remaining debt over the distinct members that made
// at least one payment inside the window, once per member regardless of how
// many payments they made.
func (r *Repository) PendingDebtBetween(ctx context.Context, from, to time.Time) (float64, error) {
	query := `
        SELECT COALESCE(SUM(GREATEST(m.plan_price - m.amount_paid, 0)), 0)
        FROM members m
        WHERE m.id IN (
            SELECT DISTINCT member_id
            FROM payments
            WHERE created_at >= $1 AND created_at < $2
        )
    `
	var total float64
	if err := r.db.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		zap.L().Error("can't sum pending debt", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// BestMonthRevenue is the all-time maximum of monthly payment sums, used as
// a comparison baseline only. It is distinct from windowed revenue.
func (r *Repository) BestMonthRevenue(ctx context.Context) (float64, error) {
	query := `
        SELECT COALESCE(MAX(monthly.total), 0)
        FROM (
            SELECT date_trunc('month', created_at) AS month, SUM(amount) AS total
            FROM payments
            GROUP BY 1
        ) monthly
    `
	var best float64
	if err := r.db.QueryRow(ctx, query).Scan(&best); err != nil {
		zap.L().Error("can't compute best month revenue", zap.Error(err))
		return 0, err
	}
	return best, nil
}
