package paymentservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/gymstack/gymcore/internal/domain"
	"github.com/gymstack/gymcore/internal/pg"
	memberrepo "github.com/gymstack/gymcore/internal/repo/member-repo"
)

type MemberRepo interface {
	GetByIDForUpdate(ctx context.Context, id int) (*domain.Member, error)
	UpdateLedger(ctx context.Context, member *domain.Member) (*domain.Member, error)
}

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	FindByMemberID(ctx context.Context, memberID int) ([]domain.Payment, error)
	FindRecent(ctx context.Context, limit int) ([]domain.Payment, error)
}

var (
	ErrInvalidPeriod          = errors.New("payment period bounds missing or malformed")
	ErrNegativeAmount         = errors.New("payment amount cannot be negative")
	ErrMemberNotFound         = errors.New("member not found")
	ErrConcurrentModification = errors.New("member ledger is being modified concurrently")
)

// Command describes one payment to record. The ledger's paid amount has no
// setter anywhere else: this command is the only write path for it.
type Command struct {
	MemberID    int
	Amount      float64
	Method      string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Notes       string
	CreatedBy   int
	// Plan carries a plan switch to apply in the same transaction, so the
	// period-change fields and the price snapshot commit together.
	Plan *domain.Plan
}

type Service struct {
	memberRepo  MemberRepo
	paymentRepo PaymentRepo
	txManager   pg.TXManager
}

func New(memberRepo MemberRepo, paymentRepo PaymentRepo, txManager pg.TXManager) *Service {
	return &Service{
		memberRepo:  memberRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
	}
}

// RecordPayment persists the payment and reconciles the member ledger in one
// transaction. The period test runs against the ledger state read under the
// row lock, before anything in this request has touched it: the first payment
// of a new period resets amount_paid, a payment for the already-open period
// accumulates. On any failure the whole transaction rolls back, so no payment
// row exists without its ledger update.
func (s *Service) RecordPayment(ctx context.Context, cmd Command) (*domain.Member, error) {
	if cmd.PeriodStart.IsZero() || cmd.PeriodEnd.IsZero() || cmd.PeriodEnd.Before(cmd.PeriodStart) {
		return nil, ErrInvalidPeriod
	}
	if cmd.Amount < 0 {
		return nil, ErrNegativeAmount
	}
	if cmd.Method == "" {
		cmd.Method = domain.PaymentMethodCash
	}

	var updated *domain.Member
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		member, err := s.memberRepo.GetByIDForUpdate(ctx, cmd.MemberID)
		if err != nil {
			if errors.Is(err, memberrepo.ErrLocked) {
				return ErrConcurrentModification
			}
			return err
		}
		if member == nil {
			return ErrMemberNotFound
		}

		if cmd.Plan != nil {
			member.PlanID = cmd.Plan.ID
			member.ActivityTypeID = cmd.Plan.ActivityTypeID
			member.PlanPrice = cmd.Plan.Price
		}

		payment := &domain.Payment{
			MemberID:    member.ID,
			PlanID:      member.PlanID,
			Amount:      cmd.Amount,
			Method:      cmd.Method,
			PaymentDate: domain.Date(time.Now()),
			PeriodStart: cmd.PeriodStart,
			PeriodEnd:   cmd.PeriodEnd,
			Notes:       cmd.Notes,
			CreatedBy:   cmd.CreatedBy,
		}
		if _, err := s.paymentRepo.Create(ctx, payment); err != nil {
			zap.L().Error("can't save payment", zap.Error(err))
			return err
		}

		if isNewPeriod(member, cmd.PeriodStart, cmd.PeriodEnd) {
			start, end := cmd.PeriodStart, cmd.PeriodEnd
			member.SubscriptionStart = &start
			member.SubscriptionEnd = &end
			member.AmountPaid = cmd.Amount
		} else {
			member.AmountPaid += cmd.Amount
		}

		updated, err = s.memberRepo.UpdateLedger(ctx, member)
		if err != nil {
			zap.L().Error("can't update member ledger", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("payment recorded",
		zap.Int("member_id", updated.ID),
		zap.Float64("amount", cmd.Amount),
		zap.Float64("amount_paid", updated.AmountPaid),
	)
	return updated, nil
}

func isNewPeriod(member *domain.Member, start, end time.Time) bool {
	if member.SubscriptionStart == nil || member.SubscriptionEnd == nil {
		return true
	}
	return !member.SubscriptionStart.Equal(start) || !member.SubscriptionEnd.Equal(end)
}

func (s *Service) GetMemberPayments(ctx context.Context, memberID int) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindByMemberID(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to fetch payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}

func (s *Service) GetRecentPayments(ctx context.Context, limit int) ([]domain.Payment, error) {
	if limit <= 0 {
		limit = 100
	}
	payments, err := s.paymentRepo.FindRecent(ctx, limit)
	if err != nil {
		zap.L().Error("failed to fetch payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}
