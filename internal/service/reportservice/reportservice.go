package reportservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/gymstack/gymcore/internal/domain"
)

type PaymentRepo interface {
	SumBetween(ctx context.Context, from, to time.Time) (float64, error)
	SumAll(ctx context.Context) (float64, error)
	PendingDebtBetween(ctx context.Context, from, to time.Time) (float64, error)
	BestMonthRevenue(ctx context.Context) (float64, error)
}

type MemberRepo interface {
	CountByStatus(ctx context.Context, today time.Time) (*domain.MemberCounts, error)
	CountDemographics(ctx context.Context) (*domain.MemberDemographics, error)
	CountByActivityType(ctx context.Context) ([]domain.ActivityCount, error)
	OutstandingDebt(ctx context.Context) (float64, error)
}

type AttendanceRepo interface {
	CountByDate(ctx context.Context, date time.Time) (int, error)
}

type Window string

const (
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowYear  Window = "year"
)

var ErrUnknownWindow = errors.New("unknown report window")

// Summary is a pure derivation over the ledger and payment history: running
// it twice over the same data yields identical totals.
type Summary struct {
	Window           Window
	From             time.Time
	To               time.Time
	CollectedRevenue float64
	PaidTotal        float64
	PendingTotal     float64
	OutstandingDebt  float64
}

type Dashboard struct {
	Counts            domain.MemberCounts
	Demographics      domain.MemberDemographics
	ActivityBreakdown []domain.ActivityCount
	IncomeToday       float64
	IncomeThisMonth   float64
	TotalIncome       float64
	BestMonth         float64
	OutstandingDebt   float64
	AttendanceToday   int
}

type Service struct {
	paymentRepo    PaymentRepo
	memberRepo     MemberRepo
	attendanceRepo AttendanceRepo
}

func New(paymentRepo PaymentRepo, memberRepo MemberRepo, attendanceRepo AttendanceRepo) *Service {
	return &Service{
		paymentRepo:    paymentRepo,
		memberRepo:     memberRepo,
		attendanceRepo: attendanceRepo,
	}
}

// windowBounds returns the half-open calendar window [from, to) containing
// the reference date. Calendar anchoring means a payment outside the window
// never counts, even when the subscription period it paid for spans the
// boundary.
func windowBounds(window Window, at time.Time) (time.Time, time.Time, error) {
	day := domain.Date(at)
	switch window {
	case WindowWeek:
		// ISO week: Monday through Sunday.
		offset := (int(day.Weekday()) + 6) % 7
		from := day.AddDate(0, 0, -offset)
		return from, from.AddDate(0, 0, 7), nil
	case WindowMonth:
		from := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(0, 1, 0), nil
	case WindowYear:
		from := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(1, 0, 0), nil
	default:
		return time.Time{}, time.Time{}, ErrUnknownWindow
	}
}

// Aggregate derives the windowed revenue and the paid/pending split. Paid is
// the sum of every payment in the window, unconditionally: money actually
// received is never reclassified as pending because the payer still owes on
// top of it. Pending sums remaining debt once per distinct payer in the
// window. Outstanding debt comes from the ledger's stored amount_paid, not
// from re-aggregated payment rows.
func (s *Service) Aggregate(ctx context.Context, window Window, at time.Time) (*Summary, error) {
	from, to, err := windowBounds(window, at)
	if err != nil {
		return nil, err
	}

	collected, err := s.paymentRepo.SumBetween(ctx, from, to)
	if err != nil {
		zap.L().Error("can't sum collected revenue", zap.Error(err))
		return nil, err
	}
	pending, err := s.paymentRepo.PendingDebtBetween(ctx, from, to)
	if err != nil {
		zap.L().Error("can't sum pending debt", zap.Error(err))
		return nil, err
	}
	outstanding, err := s.memberRepo.OutstandingDebt(ctx)
	if err != nil {
		zap.L().Error("can't sum outstanding debt", zap.Error(err))
		return nil, err
	}

	return &Summary{
		Window:           window,
		From:             from,
		To:               to,
		CollectedRevenue: collected,
		PaidTotal:        collected,
		PendingTotal:     pending,
		OutstandingDebt:  outstanding,
	}, nil
}

func (s *Service) GetDashboard(ctx context.Context, at time.Time) (*Dashboard, error) {
	today := domain.Date(at)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	counts, err := s.memberRepo.CountByStatus(ctx, today)
	if err != nil {
		zap.L().Error("can't count members", zap.Error(err))
		return nil, err
	}
	demographics, err := s.memberRepo.CountDemographics(ctx)
	if err != nil {
		zap.L().Error("can't count demographics", zap.Error(err))
		return nil, err
	}
	breakdown, err := s.memberRepo.CountByActivityType(ctx)
	if err != nil {
		zap.L().Error("can't count members by activity", zap.Error(err))
		return nil, err
	}
	incomeToday, err := s.paymentRepo.SumBetween(ctx, today, today.AddDate(0, 0, 1))
	if err != nil {
		zap.L().Error("can't sum today's income", zap.Error(err))
		return nil, err
	}
	incomeMonth, err := s.paymentRepo.SumBetween(ctx, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		zap.L().Error("can't sum month income", zap.Error(err))
		return nil, err
	}
	totalIncome, err := s.paymentRepo.SumAll(ctx)
	if err != nil {
		zap.L().Error("can't sum total income", zap.Error(err))
		return nil, err
	}
	bestMonth, err := s.paymentRepo.BestMonthRevenue(ctx)
	if err != nil {
		zap.L().Error("can't compute best month", zap.Error(err))
		return nil, err
	}
	outstanding, err := s.memberRepo.OutstandingDebt(ctx)
	if err != nil {
		zap.L().Error("can't sum outstanding debt", zap.Error(err))
		return nil, err
	}
	attendanceToday, err := s.attendanceRepo.CountByDate(ctx, today)
	if err != nil {
		zap.L().Error("can't count attendance", zap.Error(err))
		return nil, err
	}

	return &Dashboard{
		Counts:            *counts,
		Demographics:      *demographics,
		ActivityBreakdown: breakdown,
		IncomeToday:       incomeToday,
		IncomeThisMonth:   incomeMonth,
		TotalIncome:       totalIncome,
		BestMonth:         bestMonth,
		OutstandingDebt:   outstanding,
		AttendanceToday:   attendanceToday,
	}, nil
}
