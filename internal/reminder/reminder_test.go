package reminder

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/gymstack/gymcore/internal/config"
	"github.com/gymstack/gymcore/internal/domain"
	"github.com/gymstack/gymcore/pkg/clients"
)

func NewMock(t *testing.T) (*Service, *MockMemberRepo, *clients.MockHTTPClientI) {
	cfg := &config.Config{MessagingAddress: "http://localhost:8081", ReminderDays: 7}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	memberRepo := NewMockMemberRepo(ctrl)
	client := clients.NewMockHTTPClientI(ctrl)
	service := New(cfg, memberRepo, client)
	return service, memberRepo, client
}

func TestService_Start(t *testing.T) {
	service, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_processExpiring(t *testing.T) {
	end := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		members     []domain.Member
		findErr     error
		addTaskErr  error
		expectTasks int
	}{
		{
			name: "schedules a reminder per expiring member",
			members: []domain.Member{
				{ID: 101, FirstName: "Sara", LastName: "Bennani", Phone: "+212612345678", SubscriptionEnd: &end},
				{ID: 102, FirstName: "Omar", LastName: "Alaoui", Phone: "+212612345679", SubscriptionEnd: &end},
			},
			expectTasks: 2,
		},
		{
			name:    "repository error stops the pass",
			findErr: errors.New("failed to fetch expiring members"),
		},
		{
			name: "worker pool error is logged",
			members: []domain.Member{
				{ID: 103, FirstName: "Lina", LastName: "Tazi", Phone: "+212612345680", SubscriptionEnd: &end},
			},
			addTaskErr:  errors.New("failed to add task to worker pool"),
			expectTasks: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			memberRepo := NewMockMemberRepo(ctrl)
			workerPool := NewMockWorkerPoolI(ctrl)

			memberRepo.EXPECT().
				FindExpiringBetween(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(tt.members, tt.findErr).
				Times(1)
			workerPool.EXPECT().
				AddTask(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, task Task) error {
					return tt.addTaskErr
				}).
				Times(tt.expectTasks)

			service := &Service{
				memberRepo:  memberRepo,
				workerPool:  workerPool,
				horizonDays: 7,
			}

			logger := zap.NewExample()
			zap.ReplaceGlobals(logger)

			service.processExpiring(context.Background())
		})
	}
}

func TestService_sendReminder(t *testing.T) {
	end := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	t.Run("sends the reminder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := clients.NewMockHTTPClientI(ctrl)
		client.EXPECT().
			Post("http://localhost:8081/api/messages", gomock.Any(), gomock.Any()).
			Return(http.StatusOK, nil, nil).
			Times(1)

		service := &Service{url: "http://localhost:8081", client: client}

		member := domain.Member{ID: 101, FirstName: "Sara", LastName: "Bennani", Phone: "+212612345678", SubscriptionEnd: &end}
		err := service.sendReminder(context.Background(), member)
		assert.NoError(t, err)
	})

	t.Run("skips member without phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := clients.NewMockHTTPClientI(ctrl)

		service := &Service{url: "http://localhost:8081", client: client}

		member := domain.Member{ID: 102, FirstName: "Omar", LastName: "Alaoui", SubscriptionEnd: &end}
		err := service.sendReminder(context.Background(), member)
		assert.NoError(t, err)
	})

	t.Run("gives up after retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := clients.NewMockHTTPClientI(ctrl)
		client.EXPECT().
			Post(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(http.StatusBadGateway, nil, nil).
			Times(maxRetries)

		service := &Service{url: "http://localhost:8081", client: client}

		member := domain.Member{ID: 103, FirstName: "Lina", LastName: "Tazi", Phone: "+212612345680", SubscriptionEnd: &end}
		err := service.sendReminder(context.Background(), member)
		assert.Error(t, err)
	})

	t.Run("stops on canceled context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := clients.NewMockHTTPClientI(ctrl)

		service := &Service{url: "http://localhost:8081", client: client}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		member := domain.Member{ID: 104, FirstName: "Youssef", LastName: "Idrissi", Phone: "+212612345681", SubscriptionEnd: &end}
		err := service.sendReminder(ctx, member)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
