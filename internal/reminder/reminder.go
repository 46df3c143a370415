package reminder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gymstack/gymcore/internal/config"
	"github.com/gymstack/gymcore/internal/domain"
	"github.com/gymstack/gymcore/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var sendingReminders sync.Map

type MemberRepo interface {
	FindExpiringBetween(ctx context.Context, from, to time.Time) ([]domain.Member, error)
}

type Message struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
}

// Service periodically finds members whose subscription is about to expire
// and pushes a reminder to the messaging gateway.
type Service struct {
	url            string
	memberRepo     MemberRepo
	client         clients.HTTPClientI
	horizonDays    int
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, memberRepo MemberRepo, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.MessagingAddress,
		memberRepo:     memberRepo,
		client:         client,
		horizonDays:    cfg.ReminderDays,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Hour,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Reminder service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reminder service")
			return
		case <-ticker.C:
			s.processExpiring(ctx)
		}
	}
}

func (s *Service) processExpiring(ctx context.Context) {
	today := domain.Date(time.Now())
	members, err := s.memberRepo.FindExpiringBetween(ctx, today, today.AddDate(0, 0, s.horizonDays))
	if err != nil {
		zap.L().Error("Failed to fetch expiring members", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, member := range members {
		member := member

		// In-flight dedupe; a failed send becomes eligible again next tick.
		key := fmt.Sprintf("%d:%s", member.ID, today.Format("2006-01-02"))
		if _, loaded := sendingReminders.LoadOrStore(key, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer sendingReminders.Delete(key)
				return s.sendReminder(ctx, member)
			})
			if err != nil {
				sendingReminders.Delete(key)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error scheduling reminders", zap.Error(err))
	}
}

func (s *Service) sendReminder(ctx context.Context, member domain.Member) error {
	if member.Phone == "" {
		zap.L().Warn("Skipping reminder, member has no phone", zap.Int("member_id", member.ID))
		return nil
	}

	msg := Message{
		Phone: member.Phone,
		Text: fmt.Sprintf("Hi %s, your membership expires on %s. Visit the front desk to renew.",
			member.FullName(), member.SubscriptionEnd.Format("2006-01-02")),
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("can't marshal reminder: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	url := s.url + "/api/messages"
	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		statusCode, _, err := s.client.Post(url, headers, body)
		if err == nil && statusCode == http.StatusOK {
			zap.L().Info("Reminder sent", zap.Int("member_id", member.ID))
			return nil
		}
		if err != nil {
			zap.L().Warn("Reminder send failed", zap.Int("attempt", attempt), zap.Error(err))
		} else {
			zap.L().Warn("Reminder send failed", zap.Int("attempt", attempt), zap.Int("status", statusCode))
		}
		time.Sleep(retryInterval)
	}
	return fmt.Errorf("reminder for member %d failed after %d attempts", member.ID, maxRetries)
}
