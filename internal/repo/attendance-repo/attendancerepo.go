package attendancerepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/gymstack/gymcore/internal/domain"
	"github.com/gymstack/gymcore/internal/pg"
)

// ErrDuplicateCheckIn is returned when the member already has an attendance
// row for the given date.
var ErrDuplicateCheckIn = errors.New("attendance already recorded for this date")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, attendance *domain.Attendance) (*domain.Attendance, error) {
	query := `
        INSERT INTO attendance (member_id, date, check_in_time, recorded_by)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		attendance.MemberID, attendance.Date, attendance.CheckInTime, attendance.RecordedBy,
	).Scan(&attendance.ID, &attendance.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateCheckIn
		}
		zap.L().Error("can't save attendance", zap.Error(err))
		return nil, err
	}
	return attendance, nil
}

func (r *Repository) CountByDate(ctx context.Context, date time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM attendance WHERE date = $1`
	var count int
	if err := r.db.QueryRow(ctx, query, date).Scan(&count); err != nil {
		zap.L().Error("can't count attendance", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) FindByMemberID(ctx context.Context, memberID int) ([]domain.Attendance, error) {
	query := `
        SELECT id, member_id, date, check_in_time, recorded_by, created_at
        FROM attendance
        WHERE member_id = $1
        ORDER BY date DESC
    `
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		zap.L().Error("can't get attendance", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.Attendance
	for rows.Next() {
		var a domain.Attendance
		if err := rows.Scan(&a.ID, &a.MemberID, &a.Date, &a.CheckInTime, &a.RecordedBy, &a.CreatedAt); err != nil {
			zap.L().Error("can't scan attendance row", zap.Error(err))
			return nil, err
		}
		records = append(records, a)
	}
	return records, nil
}
