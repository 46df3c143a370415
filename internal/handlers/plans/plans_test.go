package plans

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gymstack/gymcore/internal/domain"
	"github.com/gymstack/gymcore/internal/dto"
	planservice "github.com/gymstack/gymcore/internal/service/planservice"
)

func NewMock(t *testing.T) (*PlanHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, url, planID, body string) *http.Request {
	r := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", planID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateActivityTypeHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"name":"Bodybuilding","description":"Free weights"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateActivityType(gomock.Any(), "Bodybuilding", "Free weights").
					Return(&domain.ActivityType{ID: 1, Name: "Bodybuilding", Description: "Free weights", IsActive: true}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Empty name",
			body: `{"name":""}`,
			prepareMock: func() {
				service.EXPECT().
					CreateActivityType(gomock.Any(), "", "").
					Return(nil, planservice.ErrInvalidPlan)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Internal server error",
			body: `{"name":"Bodybuilding"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateActivityType(gomock.Any(), "Bodybuilding", "").
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/api/activity-types", "", tt.body)
			w := httptest.NewRecorder()

			handler.CreateActivityType(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestCreatePlanHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"activity_type_id":1,"name":"Monthly","duration_days":30,"price":200}`,
			prepareMock: func() {
				service.EXPECT().
					CreatePlan(gomock.Any(), &domain.Plan{
						ActivityTypeID: 1,
						Name:           "Monthly",
						DurationDays:   30,
						Price:          200,
					}).
					Return(&domain.Plan{
						ID:             3,
						ActivityTypeID: 1,
						Name:           "Monthly",
						DurationDays:   30,
						Price:          200,
						IsActive:       true,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Validation failure",
			body: `{"activity_type_id":1,"name":"Monthly","duration_days":0,"price":200}`,
			prepareMock: func() {
				service.EXPECT().
					CreatePlan(gomock.Any(), gomock.Any()).
					Return(nil, planservice.ErrInvalidPlan)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Internal server error",
			body: `{"activity_type_id":1,"name":"Monthly","duration_days":30,"price":200}`,
			prepareMock: func() {
				service.EXPECT().
					CreatePlan(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/api/plans", "", tt.body)
			w := httptest.NewRecorder()

			handler.CreatePlan(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var resp dto.PlanResponseDTO
				err := json.NewDecoder(w.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 3, resp.ID)
			}
		})
	}
}

func TestGetPlanHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		planID        string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Plan exists",
			planID: "3",
			prepareMock: func() {
				service.EXPECT().
					GetPlan(gomock.Any(), 3).
					Return(&domain.Plan{ID: 3, Name: "Monthly", DurationDays: 30, Price: 200}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Plan not found",
			planID: "99",
			prepareMock: func() {
				service.EXPECT().
					GetPlan(gomock.Any(), 99).
					Return(nil, planservice.ErrPlanNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:          "Invalid plan id",
			planID:        "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid plan id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodGet, "/api/plans/"+tt.planID, tt.planID, "")
			w := httptest.NewRecorder()

			handler.GetPlan(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestListPlansHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Returns plans", func(t *testing.T) {
		service.EXPECT().
			ListPlans(gomock.Any()).
			Return([]domain.Plan{
				{ID: 3, Name: "Monthly", DurationDays: 30, Price: 200},
				{ID: 4, Name: "Quarterly", DurationDays: 90, Price: 500},
			}, nil)

		r := newRequest(http.MethodGet, "/api/plans", "", "")
		w := httptest.NewRecorder()

		handler.ListPlans(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp []dto.PlanResponseDTO
		err := json.NewDecoder(w.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
	})

	t.Run("Internal server error", func(t *testing.T) {
		service.EXPECT().
			ListPlans(gomock.Any()).
			Return(nil, errors.New("error"))

		r := newRequest(http.MethodGet, "/api/plans", "", "")
		w := httptest.NewRecorder()

		handler.ListPlans(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestListActivityTypesHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Returns activity types", func(t *testing.T) {
		service.EXPECT().
			ListActivityTypes(gomock.Any()).
			Return([]domain.ActivityType{
				{ID: 1, Name: "Bodybuilding", IsActive: true},
			}, nil)

		r := newRequest(http.MethodGet, "/api/activity-types", "", "")
		w := httptest.NewRecorder()

		handler.ListActivityTypes(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Internal server error", func(t *testing.T) {
		service.EXPECT().
			ListActivityTypes(gomock.Any()).
			Return(nil, errors.New("error"))

		r := newRequest(http.MethodGet, "/api/activity-types", "", "")
		w := httptest.NewRecorder()

		handler.ListActivityTypes(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
