package memberrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/gymstack/gymcore/internal/domain"
	"github.com/gymstack/gymcore/internal/pg"
)

// ErrLocked is returned when the member row is held by a concurrent
// transaction and cannot be locked without waiting.
var ErrLocked = errors.New("member row is locked")

const memberColumns = `id, first_name, last_name, phone, card_number, gender, age_category,
        activity_type_id, plan_id, plan_price, subscription_start, subscription_end,
        amount_paid, is_active, is_archived, archived_at, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m domain.Member
	err := row.Scan(
		&m.ID, &m.FirstName, &m.LastName, &m.Phone, &m.CardNumber, &m.Gender, &m.AgeCategory,
		&m.ActivityTypeID, &m.PlanID, &m.PlanPrice, &m.SubscriptionStart, &m.SubscriptionEnd,
		&m.AmountPaid, &m.IsActive, &m.IsArchived, &m.ArchivedAt, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	query := `
        INSERT INTO members (first_name, last_name, phone, card_number, gender, age_category,
            activity_type_id, plan_id, plan_price, subscription_start, subscription_end, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, TRUE)
        RETURNING ` + memberColumns
	row := r.db.QueryRow(ctx, query,
		member.FirstName, member.LastName, member.Phone, member.CardNumber, member.Gender,
		member.AgeCategory, member.ActivityTypeID, member.PlanID, member.PlanPrice,
		member.SubscriptionStart, member.SubscriptionEnd,
	)
	created, err := scanMember(row)
	if err != nil {
		zap.L().Error("can't create member", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`
	member, err := scanMember(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find member", zap.Error(err))
		return nil, err
	}
	return member, nil
}

// GetByIDForUpdate locks the member row for the duration of the enclosing
// transaction. NOWAIT turns lock contention into an immediate error so the
// caller can fail the whole payment transaction instead of blocking.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1 FOR UPDATE NOWAIT`
	member, err := scanMember(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "55P03" {
			return nil, ErrLocked
		}
		zap.L().Error("can't lock member row", zap.Error(err))
		return nil, err
	}
	return member, nil
}

// UpdateLedger writes the period bounds and amount_paid together. Callers
// must hold the row lock taken by GetByIDForUpdate.
func (r *Repository) UpdateLedger(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	query := `
        UPDATE members
        SET subscription_start = $1, subscription_end = $2, amount_paid = $3,
            plan_id = $4, activity_type_id = $5, plan_price = $6, updated_at = now()
        WHERE id = $7
        RETURNING ` + memberColumns
	row := r.db.QueryRow(ctx, query,
		member.SubscriptionStart, member.SubscriptionEnd, member.AmountPaid,
		member.PlanID, member.ActivityTypeID, member.PlanPrice, member.ID,
	)
	updated, err := scanMember(row)
	if err != nil {
		zap.L().Error("can't update member ledger", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) SetArchived(ctx context.Context, id int, archived bool) (*domain.Member, error) {
	query := `
        UPDATE members
        SET is_archived = $1,
            archived_at = CASE WHEN $1 THEN now() ELSE NULL END,
            updated_at = now()
        WHERE id = $2
        RETURNING ` + memberColumns
	member, err := scanMember(r.db.QueryRow(ctx, query, archived, id))
	if err != nil {
		zap.L().Error("can't set archived flag", zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (r *Repository) SetActive(ctx context.Context, id int, active bool) (*domain.Member, error) {
	query := `
        UPDATE members
        SET is_active = $1, updated_at = now()
        WHERE id = $2
        RETURNING ` + memberColumns
	member, err := scanMember(r.db.QueryRow(ctx, query, active, id))
	if err != nil {
		zap.L().Error("can't set active flag", zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (r *Repository) List(ctx context.Context, filter domain.MemberFilter, today time.Time) ([]domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE is_archived = $1`
	args := []any{filter.Archived}

	switch filter.Status {
	case domain.StatusActive:
		args = append(args, today)
		query += fmt.Sprintf(" AND subscription_end >= $%d", len(args))
	case domain.StatusExpired:
		args = append(args, today)
		query += fmt.Sprintf(" AND subscription_end < $%d", len(args))
	case domain.StatusPending:
		query += " AND subscription_end IS NULL"
	}

	if filter.HasDebt != nil {
		if *filter.HasDebt {
			query += " AND plan_price - amount_paid > 0"
		} else {
			query += " AND plan_price - amount_paid <= 0"
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list members", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			zap.L().Error("can't scan member row", zap.Error(err))
			return nil, err
		}
		members = append(members, *member)
	}
	return members, nil
}

func (r *Repository) CountByStatus(ctx context.Context, today time.Time) (*domain.MemberCounts, error) {
	query := `
        SELECT
            COUNT(*),
            COUNT(*) FILTER (WHERE subscription_end >= $1),
            COUNT(*) FILTER (WHERE subscription_end < $1),
            COUNT(*) FILTER (WHERE subscription_end IS NULL),
            COUNT(*) FILTER (WHERE subscription_end BETWEEN $1 AND $2),
            COUNT(*) FILTER (WHERE NOT is_active)
        FROM members
        WHERE NOT is_archived
    `
	var counts domain.MemberCounts
	err := r.db.QueryRow(ctx, query, today, today.AddDate(0, 0, 7)).Scan(
		&counts.Total, &counts.Active, &counts.Expired,
		&counts.Pending, &counts.ExpiringSoon, &counts.Suspended,
	)
	if err != nil {
		zap.L().Error("can't count members", zap.Error(err))
		return nil, err
	}
	return &counts, nil
}

func (r *Repository) CountDemographics(ctx context.Context) (*domain.MemberDemographics, error) {
	query := `
        SELECT
            COUNT(*) FILTER (WHERE gender = 'M' AND age_category = 'ADULT'),
            COUNT(*) FILTER (WHERE gender = 'F' AND age_category = 'ADULT'),
            COUNT(*) FILTER (WHERE age_category = 'CHILD')
        FROM members
        WHERE NOT is_archived
    `
	var demographics domain.MemberDemographics
	err := r.db.QueryRow(ctx, query).Scan(
		&demographics.Men, &demographics.Women, &demographics.Kids,
	)
	if err != nil {
		zap.L().Error("can't count demographics", zap.Error(err))
		return nil, err
	}
	return &demographics, nil
}

func (r *Repository) CountByActivityType(ctx context.Context) ([]domain.ActivityCount, error) {
	query := `
        SELECT a.name, COUNT(m.id)
        FROM members m
        JOIN activity_types a ON a.id = m.activity_type_id
        WHERE NOT m.is_archived
        GROUP BY a.name
        ORDER BY COUNT(m.id) DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't count members by activity", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var breakdown []domain.ActivityCount
	for rows.Next() {
		var entry domain.ActivityCount
		if err := rows.Scan(&entry.ActivityType, &entry.Count); err != nil {
			zap.L().Error("can't scan activity count row", zap.Error(err))
			return nil, err
		}
		breakdown = append(breakdown, entry)
	}
	return breakdown, nil
}

// OutstandingDebt sums remaining debt over active members from the stored
// amount_paid. Payment history is deliberately not re-aggregated here:
// pre-fix payment rows may carry the full plan price instead of the amount
// actually received, while the ledger column is kept authoritative.
func (r *Repository) OutstandingDebt(ctx context.Context) (float64, error) {
	query := `
        SELECT COALESCE(SUM(GREATEST(plan_price - amount_paid, 0)), 0)
        FROM members
        WHERE is_active AND NOT is_archived
    `
	var total float64
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		zap.L().Error("can't sum outstanding debt", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) FindExpiringBetween(ctx context.Context, from, to time.Time) ([]domain.Member, error) {
	query := `SELECT ` + memberColumns + `
        FROM members
        WHERE is_active AND NOT is_archived AND subscription_end BETWEEN $1 AND $2
        ORDER BY subscription_end ASC`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		zap.L().Error("can't find expiring members", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			zap.L().Error("can't scan member row", zap.Error(err))
			return nil, err
		}
		members = append(members, *member)
	}
	return members, nil
}

// RecomputeLedgers rebuilds amount_paid from the payments of each member's
// current period. This is the operator-triggered repair path only; the
// reconciler never calls it.
func (r *Repository) RecomputeLedgers(ctx context.Context) (int64, error) {
	query := `
        UPDATE members m
        SET amount_paid = COALESCE((
                SELECT SUM(p.amount)
                FROM payments p
                WHERE p.member_id = m.id
                  AND p.period_start = m.subscription_start
                  AND p.period_end = m.subscription_end
            ), 0),
            updated_at = now()
        WHERE m.subscription_start IS NOT NULL
    `
	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		zap.L().Error("can't recompute ledgers", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
