package reportservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gymstack/gymcore/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockPaymentRepo, *MockMemberRepo, *MockAttendanceRepo) {
	ctrl := gomock.NewController(t)
	paymentRepo := NewMockPaymentRepo(ctrl)
	memberRepo := NewMockMemberRepo(ctrl)
	attendanceRepo := NewMockAttendanceRepo(ctrl)
	service := New(paymentRepo, memberRepo, attendanceRepo)
	defer ctrl.Finish()
	return service, paymentRepo, memberRepo, attendanceRepo
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWindowBounds(t *testing.T) {
	// 2026-08-12 is a Wednesday.
	at := date(2026, 8, 12)

	tests := []struct {
		name         string
		window       Window
		expectedFrom time.Time
		expectedTo   time.Time
		expectedErr  error
	}{
		{name: "Week starts Monday", window: WindowWeek, expectedFrom: date(2026, 8, 10), expectedTo: date(2026, 8, 17)},
		{name: "Month starts on the first", window: WindowMonth, expectedFrom: date(2026, 8, 1), expectedTo: date(2026, 9, 1)},
		{name: "Year starts January first", window: WindowYear, expectedFrom: date(2026, 1, 1), expectedTo: date(2027, 1, 1)},
		{name: "Unknown window", window: Window("quarter"), expectedErr: ErrUnknownWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := windowBounds(tt.window, at)
			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, from.Equal(tt.expectedFrom))
			assert.True(t, to.Equal(tt.expectedTo))
		})
	}
}

func TestWindowBounds_SundayBelongsToSameWeek(t *testing.T) {
	// 2026-08-16 is a Sunday; its ISO week still starts on 2026-08-10.
	from, to, err := windowBounds(WindowWeek, date(2026, 8, 16))
	assert.NoError(t, err)
	assert.True(t, from.Equal(date(2026, 8, 10)))
	assert.True(t, to.Equal(date(2026, 8, 17)))
}

func TestAggregate(t *testing.T) {
	at := date(2026, 8, 12)
	monthFrom, monthTo := date(2026, 8, 1), date(2026, 9, 1)

	t.Run("Paid is the full collected sum, pending sits on top of it", func(t *testing.T) {
		service, paymentRepo, memberRepo, _ := NewMock(t)

		paymentRepo.EXPECT().SumBetween(gomock.Any(), monthFrom, monthTo).Return(4200.0, nil)
		paymentRepo.EXPECT().PendingDebtBetween(gomock.Any(), monthFrom, monthTo).Return(380.0, nil)
		memberRepo.EXPECT().OutstandingDebt(gomock.Any()).Return(760.0, nil)

		summary, err := service.Aggregate(context.Background(), WindowMonth, at)
		assert.NoError(t, err)
		assert.Equal(t, 4200.0, summary.CollectedRevenue)
		assert.Equal(t, 4200.0, summary.PaidTotal)
		assert.Equal(t, 380.0, summary.PendingTotal)
		assert.Equal(t, 760.0, summary.OutstandingDebt)
		assert.True(t, summary.From.Equal(monthFrom))
		assert.True(t, summary.To.Equal(monthTo))
	})

	t.Run("Unknown window fails before touching the repos", func(t *testing.T) {
		service, _, _, _ := NewMock(t)

		_, err := service.Aggregate(context.Background(), Window("quarter"), at)
		assert.Equal(t, ErrUnknownWindow, err)
	})

	t.Run("Repo error propagates", func(t *testing.T) {
		service, paymentRepo, _, _ := NewMock(t)

		paymentRepo.EXPECT().SumBetween(gomock.Any(), monthFrom, monthTo).Return(0.0, errors.New("db error"))

		_, err := service.Aggregate(context.Background(), WindowMonth, at)
		assert.Error(t, err)
	})

	t.Run("Identical data yields identical summaries", func(t *testing.T) {
		service, paymentRepo, memberRepo, _ := NewMock(t)

		paymentRepo.EXPECT().SumBetween(gomock.Any(), monthFrom, monthTo).Return(4200.0, nil).Times(2)
		paymentRepo.EXPECT().PendingDebtBetween(gomock.Any(), monthFrom, monthTo).Return(380.0, nil).Times(2)
		memberRepo.EXPECT().OutstandingDebt(gomock.Any()).Return(760.0, nil).Times(2)

		first, err := service.Aggregate(context.Background(), WindowMonth, at)
		assert.NoError(t, err)
		second, err := service.Aggregate(context.Background(), WindowMonth, at)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestGetDashboard(t *testing.T) {
	at := date(2026, 8, 12)
	monthStart := date(2026, 8, 1)

	service, paymentRepo, memberRepo, attendanceRepo := NewMock(t)

	counts := &domain.MemberCounts{Total: 120, Active: 96, Expired: 18, Pending: 6, ExpiringSoon: 9, Suspended: 2}
	demographics := &domain.MemberDemographics{Men: 70, Women: 35, Kids: 15}
	breakdown := []domain.ActivityCount{
		{ActivityType: "Musculation", Count: 80},
		{ActivityType: "Taekwondo", Count: 40},
	}
	memberRepo.EXPECT().CountByStatus(gomock.Any(), at).Return(counts, nil)
	memberRepo.EXPECT().CountDemographics(gomock.Any()).Return(demographics, nil)
	memberRepo.EXPECT().CountByActivityType(gomock.Any()).Return(breakdown, nil)
	paymentRepo.EXPECT().SumBetween(gomock.Any(), at, at.AddDate(0, 0, 1)).Return(600.0, nil)
	paymentRepo.EXPECT().SumBetween(gomock.Any(), monthStart, monthStart.AddDate(0, 1, 0)).Return(4200.0, nil)
	paymentRepo.EXPECT().SumAll(gomock.Any()).Return(56300.0, nil)
	paymentRepo.EXPECT().BestMonthRevenue(gomock.Any()).Return(6100.0, nil)
	memberRepo.EXPECT().OutstandingDebt(gomock.Any()).Return(760.0, nil)
	attendanceRepo.EXPECT().CountByDate(gomock.Any(), at).Return(34, nil)

	dashboard, err := service.GetDashboard(context.Background(), at)
	assert.NoError(t, err)
	assert.Equal(t, *counts, dashboard.Counts)
	assert.Equal(t, *demographics, dashboard.Demographics)
	assert.Equal(t, breakdown, dashboard.ActivityBreakdown)
	assert.Equal(t, 600.0, dashboard.IncomeToday)
	assert.Equal(t, 4200.0, dashboard.IncomeThisMonth)
	assert.Equal(t, 56300.0, dashboard.TotalIncome)
	assert.Equal(t, 6100.0, dashboard.BestMonth)
	assert.Equal(t, 760.0, dashboard.OutstandingDebt)
	assert.Equal(t, 34, dashboard.AttendanceToday)
}

func TestGetDashboard_CountError(t *testing.T) {
	service, _, memberRepo, _ := NewMock(t)

	memberRepo.EXPECT().CountByStatus(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

	_, err := service.GetDashboard(context.Background(), date(2026, 8, 12))
	assert.Error(t, err)
}
