package memberservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/gymstack/gymcore/internal/domain"
	"github.com/gymstack/gymcore/internal/service/paymentservice"
	"github.com/gymstack/gymcore/pkg/validate"
)

type MemberRepo interface {
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	GetByID(ctx context.Context, id int) (*domain.Member, error)
	List(ctx context.Context, filter domain.MemberFilter, today time.Time) ([]domain.Member, error)
	SetArchived(ctx context.Context, id int, archived bool) (*domain.Member, error)
	SetActive(ctx context.Context, id int, active bool) (*domain.Member, error)
	RecomputeLedgers(ctx context.Context) (int64, error)
}

type PlanRepo interface {
	GetPlanByID(ctx context.Context, id int) (*domain.Plan, error)
}

type Payments interface {
	RecordPayment(ctx context.Context, cmd paymentservice.Command) (*domain.Member, error)
}

var (
	ErrMemberNotFound    = errors.New("member not found")
	ErrPlanNotFound      = errors.New("membership plan not found")
	ErrInvalidCardNumber = errors.New("invalid card number")
	ErrAlreadyArchived   = errors.New("member is already archived")
	ErrNotArchived       = errors.New("member is not archived")
)

type Service struct {
	memberRepo MemberRepo
	planRepo   PlanRepo
	payments   Payments
}

func New(memberRepo MemberRepo, planRepo PlanRepo, payments Payments) *Service {
	return &Service{
		memberRepo: memberRepo,
		planRepo:   planRepo,
		payments:   payments,
	}
}

type EnrollInput struct {
	FirstName   string
	LastName    string
	Phone       string
	CardNumber  string
	Gender      string
	AgeCategory string
	PlanID      int
	StartDate   *time.Time
	Amount      *float64
	Method      string
	CreatedBy   int
}

// Enroll creates the member and records the initial payment. The member row
// is created without period bounds and with a zero paid amount; the
// reconciler alone seeds both from the first payment, so nothing the
// enrollment request carries can double-apply into the ledger.
func (s *Service) Enroll(ctx context.Context, input EnrollInput) (*domain.Member, error) {
	if input.CardNumber != "" && !validate.IsCardNumber(input.CardNumber) {
		return nil, ErrInvalidCardNumber
	}

	plan, err := s.planRepo.GetPlanByID(ctx, input.PlanID)
	if err != nil {
		zap.L().Error("can't find plan", zap.Error(err))
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	start := domain.Date(time.Now())
	if input.StartDate != nil {
		start = domain.Date(*input.StartDate)
	}
	end := start.AddDate(0, 0, plan.DurationDays)

	member := &domain.Member{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Phone:          input.Phone,
		CardNumber:     input.CardNumber,
		Gender:         input.Gender,
		AgeCategory:    input.AgeCategory,
		ActivityTypeID: plan.ActivityTypeID,
		PlanID:         plan.ID,
		PlanPrice:      plan.Price,
	}

	if plan.Price == 0 {
		// Free plans carry no payment; the period is set at creation and the
		// paid amount stays zero.
		member.SubscriptionStart = &start
		member.SubscriptionEnd = &end
	}

	created, err := s.memberRepo.Create(ctx, member)
	if err != nil {
		zap.L().Error("can't create member", zap.Error(err))
		return nil, err
	}
	if plan.Price == 0 {
		return created, nil
	}

	amount := plan.Price
	if input.Amount != nil {
		amount = *input.Amount
	}

	updated, err := s.payments.RecordPayment(ctx, paymentservice.Command{
		MemberID:    created.ID,
		Amount:      amount,
		Method:      input.Method,
		PeriodStart: start,
		PeriodEnd:   end,
		Notes:       "Initial subscription: " + plan.Name,
		CreatedBy:   input.CreatedBy,
	})
	if err != nil {
		zap.L().Error("can't record initial payment", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

type RenewInput struct {
	PlanID    *int
	Amount    *float64
	Method    string
	CreatedBy int
}

// Renew computes the next billing period and delegates the ledger update
// entirely to the reconciler: the period bounds and the paid amount commit
// together inside the payment transaction, never ahead of it.
func (s *Service) Renew(ctx context.Context, memberID int, input RenewInput) (*domain.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		zap.L().Error("can't find member", zap.Error(err))
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	planID := member.PlanID
	if input.PlanID != nil {
		planID = *input.PlanID
	}
	plan, err := s.planRepo.GetPlanByID(ctx, planID)
	if err != nil {
		zap.L().Error("can't find plan", zap.Error(err))
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	today := domain.Date(time.Now())
	start := today
	if member.SubscriptionEnd != nil && !member.SubscriptionEnd.Before(today) {
		// Still active: the new period starts the day after the current one ends.
		start = member.SubscriptionEnd.AddDate(0, 0, 1)
	}
	end := start.AddDate(0, 0, plan.DurationDays)

	amount := plan.Price
	if input.Amount != nil {
		amount = *input.Amount
	}

	updated, err := s.payments.RecordPayment(ctx, paymentservice.Command{
		MemberID:    member.ID,
		Amount:      amount,
		Method:      input.Method,
		PeriodStart: start,
		PeriodEnd:   end,
		Notes:       "Renewal: " + plan.Name,
		CreatedBy:   input.CreatedBy,
		Plan:        plan,
	})
	if err != nil {
		zap.L().Error("can't record renewal payment", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) GetMember(ctx context.Context, id int) (*domain.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find member", zap.Error(err))
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

func (s *Service) ListMembers(ctx context.Context, filter domain.MemberFilter) ([]domain.Member, error) {
	members, err := s.memberRepo.List(ctx, filter, domain.Date(time.Now()))
	if err != nil {
		zap.L().Error("can't list members", zap.Error(err))
		return nil, err
	}
	return members, nil
}

func (s *Service) Archive(ctx context.Context, id int) (*domain.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	if member.IsArchived {
		return nil, ErrAlreadyArchived
	}
	return s.memberRepo.SetArchived(ctx, id, true)
}

func (s *Service) Restore(ctx context.Context, id int) (*domain.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	if !member.IsArchived {
		return nil, ErrNotArchived
	}
	return s.memberRepo.SetArchived(ctx, id, false)
}

func (s *Service) ToggleActive(ctx context.Context, id int) (*domain.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return s.memberRepo.SetActive(ctx, id, !member.IsActive)
}

// RecomputeLedgers is the operator-triggered repair pass for historical data
// inconsistencies. It is never invoked by the reconciler or any automatic
// path.
func (s *Service) RecomputeLedgers(ctx context.Context) (int64, error) {
	affected, err := s.memberRepo.RecomputeLedgers(ctx)
	if err != nil {
		zap.L().Error("can't recompute ledgers", zap.Error(err))
		return 0, err
	}
	zap.L().Info("ledger recompute finished", zap.Int64("members_updated", affected))
	return affected, nil
}
