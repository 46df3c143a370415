package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/gymstack/gymcore/docs"
	"github.com/gymstack/gymcore/internal/pg"
	"github.com/gymstack/gymcore/internal/repo"
	"github.com/gymstack/gymcore/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	services := service.New(repo.New(mockDB), pg.NewMockTXManager(ctrl))

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockMemberHandler := NewMockMemberHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)
	mockReportHandler := NewMockReportHandler(ctrl)
	mockAttendanceHandler := NewMockAttendanceHandler(ctrl)
	mockPlanHandler := NewMockPlanHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockMemberHandler.EXPECT().Enroll(gomock.Any(), gomock.Any()).AnyTimes()
	mockMemberHandler.EXPECT().ListMembers(gomock.Any(), gomock.Any()).AnyTimes()
	mockMemberHandler.EXPECT().GetMember(gomock.Any(), gomock.Any()).AnyTimes()
	mockMemberHandler.EXPECT().Renew(gomock.Any(), gomock.Any()).AnyTimes()
	mockMemberHandler.EXPECT().Archive(gomock.Any(), gomock.Any()).AnyTimes()
	mockMemberHandler.EXPECT().Restore(gomock.Any(), gomock.Any()).AnyTimes()
	mockMemberHandler.EXPECT().ToggleActive(gomock.Any(), gomock.Any()).AnyTimes()
	mockMemberHandler.EXPECT().RecomputeLedgers(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().GetMemberPayments(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().GetRecentPayments(gomock.Any(), gomock.Any()).AnyTimes()
	mockReportHandler.EXPECT().Aggregate(gomock.Any(), gomock.Any()).AnyTimes()
	mockReportHandler.EXPECT().Dashboard(gomock.Any(), gomock.Any()).AnyTimes()
	mockAttendanceHandler.EXPECT().CheckIn(gomock.Any(), gomock.Any()).AnyTimes()
	mockAttendanceHandler.EXPECT().GetMemberAttendance(gomock.Any(), gomock.Any()).AnyTimes()
	mockPlanHandler.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).AnyTimes()
	mockPlanHandler.EXPECT().ListPlans(gomock.Any(), gomock.Any()).AnyTimes()
	mockPlanHandler.EXPECT().GetPlan(gomock.Any(), gomock.Any()).AnyTimes()
	mockPlanHandler.EXPECT().CreateActivityType(gomock.Any(), gomock.Any()).AnyTimes()
	mockPlanHandler.EXPECT().ListActivityTypes(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:       mockAuthHandler,
		MemberHandler:     mockMemberHandler,
		PaymentHandler:    mockPaymentHandler,
		ReportHandler:     mockReportHandler,
		AttendanceHandler: mockAttendanceHandler,
		PlanHandler:       mockPlanHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"POST", "/api/members", http.StatusUnauthorized},
		{"GET", "/api/members", http.StatusUnauthorized},
		{"GET", "/api/members/1", http.StatusUnauthorized},
		{"POST", "/api/members/1/renew", http.StatusUnauthorized},
		{"POST", "/api/members/1/archive", http.StatusUnauthorized},
		{"POST", "/api/members/1/restore", http.StatusUnauthorized},
		{"POST", "/api/members/1/toggle-active", http.StatusUnauthorized},
		{"POST", "/api/members/1/payments", http.StatusUnauthorized},
		{"GET", "/api/members/1/payments", http.StatusUnauthorized},
		{"GET", "/api/members/1/attendance", http.StatusUnauthorized},
		{"GET", "/api/payments", http.StatusUnauthorized},
		{"POST", "/api/attendance/check-in", http.StatusUnauthorized},
		{"GET", "/api/reports/aggregate", http.StatusUnauthorized},
		{"GET", "/api/reports/dashboard", http.StatusUnauthorized},
		{"POST", "/api/plans", http.StatusUnauthorized},
		{"GET", "/api/plans", http.StatusUnauthorized},
		{"GET", "/api/plans/1", http.StatusUnauthorized},
		{"POST", "/api/activity-types", http.StatusUnauthorized},
		{"GET", "/api/activity-types", http.StatusUnauthorized},
		{"POST", "/api/admin/recompute-ledgers", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
