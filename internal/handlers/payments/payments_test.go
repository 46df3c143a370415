package payments

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gymstack/gymcore/internal/domain"
	paymentservice "github.com/gymstack/gymcore/internal/service/paymentservice"
	"github.com/gymstack/gymcore/pkg/auth"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, url, memberID, body string) *http.Request {
	r := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", memberID)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, auth.UserIDKey, 7)
	return r.WithContext(ctx)
}

func TestRecordPaymentHandler(t *testing.T) {
	handler, service := NewMock(t)

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	member := &domain.Member{
		ID:                42,
		FirstName:         "Sara",
		LastName:          "Bennani",
		PlanID:            3,
		PlanPrice:         200,
		SubscriptionStart: &start,
		SubscriptionEnd:   &end,
		AmountPaid:        150,
		IsActive:          true,
	}

	tests := []struct {
		name          string
		memberID      string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:     "Successful payment",
			memberID: "42",
			body:     `{"amount":150,"method":"CASH","period_start":"2026-08-01","period_end":"2026-08-31"}`,
			prepareMock: func() {
				service.EXPECT().
					RecordPayment(gomock.Any(), paymentservice.Command{
						MemberID:    42,
						Amount:      150,
						Method:      "CASH",
						PeriodStart: start,
						PeriodEnd:   end,
						CreatedBy:   7,
					}).
					Return(member, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid member id",
			memberID:      "abc",
			body:          `{"amount":150,"period_start":"2026-08-01","period_end":"2026-08-31"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid member id",
		},
		{
			name:          "Invalid request body",
			memberID:      "42",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Invalid period start",
			memberID:      "42",
			body:          `{"amount":150,"period_start":"not-a-date","period_end":"2026-08-31"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid period_start",
		},
		{
			name:          "Invalid period end",
			memberID:      "42",
			body:          `{"amount":150,"period_start":"2026-08-01","period_end":"not-a-date"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid period_end",
		},
		{
			name:     "Member not found",
			memberID: "99",
			body:     `{"amount":150,"period_start":"2026-08-01","period_end":"2026-08-31"}`,
			prepareMock: func() {
				service.EXPECT().
					RecordPayment(gomock.Any(), gomock.Any()).
					Return(nil, paymentservice.ErrMemberNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "member not found",
		},
		{
			name:     "Concurrent modification",
			memberID: "42",
			body:     `{"amount":150,"period_start":"2026-08-01","period_end":"2026-08-31"}`,
			prepareMock: func() {
				service.EXPECT().
					RecordPayment(gomock.Any(), gomock.Any()).
					Return(nil, paymentservice.ErrConcurrentModification)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:     "Negative amount",
			memberID: "42",
			body:     `{"amount":-10,"period_start":"2026-08-01","period_end":"2026-08-31"}`,
			prepareMock: func() {
				service.EXPECT().
					RecordPayment(gomock.Any(), gomock.Any()).
					Return(nil, paymentservice.ErrNegativeAmount)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "Internal server error",
			memberID: "42",
			body:     `{"amount":150,"period_start":"2026-08-01","period_end":"2026-08-31"}`,
			prepareMock: func() {
				service.EXPECT().
					RecordPayment(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/api/members/"+tt.memberID+"/payments", tt.memberID, tt.body)
			w := httptest.NewRecorder()

			handler.RecordPayment(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"amount_paid":150`)
			}
		})
	}
}

func TestGetMemberPaymentsHandler(t *testing.T) {
	handler, service := NewMock(t)

	now := time.Now()
	payments := []domain.Payment{
		{
			ID:          7,
			MemberID:    42,
			Amount:      150,
			Method:      "CASH",
			PaymentDate: now,
			PeriodStart: now,
			PeriodEnd:   now.AddDate(0, 0, 30),
			CreatedAt:   now,
		},
	}

	tests := []struct {
		name          string
		memberID      string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:     "Successful retrieval",
			memberID: "42",
			prepareMock: func() {
				service.EXPECT().
					GetMemberPayments(gomock.Any(), 42).
					Return(payments, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:     "No payments found",
			memberID: "42",
			prepareMock: func() {
				service.EXPECT().
					GetMemberPayments(gomock.Any(), 42).
					Return([]domain.Payment{}, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:          "Invalid member id",
			memberID:      "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid member id",
		},
		{
			name:     "Internal server error",
			memberID: "42",
			prepareMock: func() {
				service.EXPECT().
					GetMemberPayments(gomock.Any(), 42).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to fetch payments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodGet, "/api/members/"+tt.memberID+"/payments", tt.memberID, "")
			w := httptest.NewRecorder()

			handler.GetMemberPayments(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetRecentPaymentsHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Respects limit query param", func(t *testing.T) {
		service.EXPECT().
			GetRecentPayments(gomock.Any(), 10).
			Return([]domain.Payment{}, nil)

		r := newRequest(http.MethodGet, "/api/payments?limit=10", "", "")
		w := httptest.NewRecorder()

		handler.GetRecentPayments(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Missing limit defaults to zero", func(t *testing.T) {
		service.EXPECT().
			GetRecentPayments(gomock.Any(), 0).
			Return([]domain.Payment{}, nil)

		r := newRequest(http.MethodGet, "/api/payments", "", "")
		w := httptest.NewRecorder()

		handler.GetRecentPayments(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Internal server error", func(t *testing.T) {
		service.EXPECT().
			GetRecentPayments(gomock.Any(), 0).
			Return(nil, errors.New("error"))

		r := newRequest(http.MethodGet, "/api/payments", "", "")
		w := httptest.NewRecorder()

		handler.GetRecentPayments(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
