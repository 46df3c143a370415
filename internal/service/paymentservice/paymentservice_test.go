package paymentservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gymstack/gymcore/internal/domain"
	"github.com/gymstack/gymcore/internal/pg"
	memberrepo "github.com/gymstack/gymcore/internal/repo/member-repo"
)

func NewMock(t *testing.T) (*Service, *MockMemberRepo, *MockPaymentRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	memberRepo := NewMockMemberRepo(ctrl)
	paymentRepo := NewMockPaymentRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(memberRepo, paymentRepo, txManager)
	defer ctrl.Finish()
	return service, memberRepo, paymentRepo, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func memberWithPeriod(start, end time.Time, paid, price float64) *domain.Member {
	return &domain.Member{
		ID:                42,
		PlanID:            3,
		PlanPrice:         price,
		SubscriptionStart: &start,
		SubscriptionEnd:   &end,
		AmountPaid:        paid,
		IsActive:          true,
	}
}

func TestRecordPayment(t *testing.T) {
	julyStart, julyEnd := date(2026, 7, 1), date(2026, 7, 31)
	augStart, augEnd := date(2026, 8, 1), date(2026, 8, 31)

	tests := []struct {
		name         string
		cmd          Command
		prepareMock  func(memberRepo *MockMemberRepo, paymentRepo *MockPaymentRepo)
		expectedPaid float64
		expectedErr  error
	}{
		{
			name: "New period resets the paid amount instead of accumulating",
			cmd:  Command{MemberID: 42, Amount: 150, PeriodStart: augStart, PeriodEnd: augEnd},
			prepareMock: func(memberRepo *MockMemberRepo, paymentRepo *MockPaymentRepo) {
				memberRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 42).
					Return(memberWithPeriod(julyStart, julyEnd, 170, 200), nil)
				paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Payment{ID: 7}, nil)
				memberRepo.EXPECT().UpdateLedger(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, m *domain.Member) (*domain.Member, error) {
						return m, nil
					})
			},
			expectedPaid: 150,
		},
		{
			name: "Same period accumulates the paid amount",
			cmd:  Command{MemberID: 42, Amount: 50, PeriodStart: augStart, PeriodEnd: augEnd},
			prepareMock: func(memberRepo *MockMemberRepo, paymentRepo *MockPaymentRepo) {
				memberRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 42).
					Return(memberWithPeriod(augStart, augEnd, 150, 200), nil)
				paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Payment{ID: 8}, nil)
				memberRepo.EXPECT().UpdateLedger(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, m *domain.Member) (*domain.Member, error) {
						return m, nil
					})
			},
			expectedPaid: 200,
		},
		{
			name: "Member without period bounds takes the reset branch",
			cmd:  Command{MemberID: 42, Amount: 120, PeriodStart: augStart, PeriodEnd: augEnd},
			prepareMock: func(memberRepo *MockMemberRepo, paymentRepo *MockPaymentRepo) {
				memberRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 42).
					Return(&domain.Member{ID: 42, PlanID: 3, PlanPrice: 200, IsActive: true}, nil)
				paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Payment{ID: 9}, nil)
				memberRepo.EXPECT().UpdateLedger(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, m *domain.Member) (*domain.Member, error) {
						return m, nil
					})
			},
			expectedPaid: 120,
		},
		{
			name:        "Missing period bounds are rejected",
			cmd:         Command{MemberID: 42, Amount: 150},
			expectedErr: ErrInvalidPeriod,
		},
		{
			name:        "Period end before start is rejected",
			cmd:         Command{MemberID: 42, Amount: 150, PeriodStart: augEnd, PeriodEnd: augStart},
			expectedErr: ErrInvalidPeriod,
		},
		{
			name:        "Negative amount is rejected",
			cmd:         Command{MemberID: 42, Amount: -1, PeriodStart: augStart, PeriodEnd: augEnd},
			expectedErr: ErrNegativeAmount,
		},
		{
			name: "Unknown member",
			cmd:  Command{MemberID: 99, Amount: 150, PeriodStart: augStart, PeriodEnd: augEnd},
			prepareMock: func(memberRepo *MockMemberRepo, paymentRepo *MockPaymentRepo) {
				memberRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 99).Return(nil, nil)
			},
			expectedErr: ErrMemberNotFound,
		},
		{
			name: "Locked ledger surfaces a concurrency conflict",
			cmd:  Command{MemberID: 42, Amount: 150, PeriodStart: augStart, PeriodEnd: augEnd},
			prepareMock: func(memberRepo *MockMemberRepo, paymentRepo *MockPaymentRepo) {
				memberRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 42).Return(nil, memberrepo.ErrLocked)
			},
			expectedErr: ErrConcurrentModification,
		},
		{
			name: "Failed payment insert aborts the transaction",
			cmd:  Command{MemberID: 42, Amount: 150, PeriodStart: augStart, PeriodEnd: augEnd},
			prepareMock: func(memberRepo *MockMemberRepo, paymentRepo *MockPaymentRepo) {
				memberRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 42).
					Return(memberWithPeriod(augStart, augEnd, 0, 200), nil)
				paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, memberRepo, paymentRepo, txManager := NewMock(t)
			passthroughTx(txManager)
			if tt.prepareMock != nil {
				tt.prepareMock(memberRepo, paymentRepo)
			}

			updated, err := service.RecordPayment(context.Background(), tt.cmd)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
				assert.Nil(t, updated)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedPaid, updated.AmountPaid)
				assert.True(t, updated.SubscriptionStart.Equal(tt.cmd.PeriodStart))
				assert.True(t, updated.SubscriptionEnd.Equal(tt.cmd.PeriodEnd))
			}
		})
	}
}

func TestRecordPayment_PlanSwitch(t *testing.T) {
	service, memberRepo, paymentRepo, txManager := NewMock(t)
	passthroughTx(txManager)

	julyStart, julyEnd := date(2026, 7, 1), date(2026, 7, 31)
	augStart, augEnd := date(2026, 8, 1), date(2026, 8, 31)

	memberRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 42).
		Return(memberWithPeriod(julyStart, julyEnd, 200, 200), nil)
	paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
			assert.Equal(t, 5, p.PlanID)
			return p, nil
		})
	memberRepo.EXPECT().UpdateLedger(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m *domain.Member) (*domain.Member, error) {
			return m, nil
		})

	updated, err := service.RecordPayment(context.Background(), Command{
		MemberID:    42,
		Amount:      300,
		PeriodStart: augStart,
		PeriodEnd:   augEnd,
		Plan:        &domain.Plan{ID: 5, ActivityTypeID: 2, Price: 350},
	})

	assert.NoError(t, err)
	assert.Equal(t, 5, updated.PlanID)
	assert.Equal(t, 350.0, updated.PlanPrice)
	assert.Equal(t, 300.0, updated.AmountPaid)
}

func TestRecordPayment_IdempotentAccumulation(t *testing.T) {
	service, memberRepo, paymentRepo, txManager := NewMock(t)
	passthroughTx(txManager)

	augStart, augEnd := date(2026, 8, 1), date(2026, 8, 31)
	member := memberWithPeriod(augStart, augEnd, 0, 200)

	memberRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 42).Return(member, nil).Times(2)
	paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Payment{}, nil).Times(2)
	memberRepo.EXPECT().UpdateLedger(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m *domain.Member) (*domain.Member, error) {
			return m, nil
		}).Times(2)

	cmd := Command{MemberID: 42, Amount: 80, PeriodStart: augStart, PeriodEnd: augEnd}
	first, err := service.RecordPayment(context.Background(), cmd)
	assert.NoError(t, err)
	assert.Equal(t, 80.0, first.AmountPaid)

	second, err := service.RecordPayment(context.Background(), cmd)
	assert.NoError(t, err)
	assert.Equal(t, 160.0, second.AmountPaid)
}

func TestGetMemberPayments(t *testing.T) {
	service, _, paymentRepo, _ := NewMock(t)

	expected := []domain.Payment{{ID: 1, MemberID: 42, Amount: 150}}
	paymentRepo.EXPECT().FindByMemberID(gomock.Any(), 42).Return(expected, nil)

	payments, err := service.GetMemberPayments(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, expected, payments)
}

func TestGetRecentPayments(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		expectedLimit int
	}{
		{name: "Explicit limit is used", limit: 10, expectedLimit: 10},
		{name: "Non-positive limit falls back to the default", limit: 0, expectedLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, paymentRepo, _ := NewMock(t)
			paymentRepo.EXPECT().FindRecent(gomock.Any(), tt.expectedLimit).Return([]domain.Payment{}, nil)

			_, err := service.GetRecentPayments(context.Background(), tt.limit)
			assert.NoError(t, err)
		})
	}
}
