package attendanceservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/gymstack/gymcore/internal/domain"
	attendancerepo "github.com/gymstack/gymcore/internal/repo/attendance-repo"
	"github.com/gymstack/gymcore/pkg/validate"
)

type AttendanceRepo interface {
	Create(ctx context.Context, attendance *domain.Attendance) (*domain.Attendance, error)
	FindByMemberID(ctx context.Context, memberID int) ([]domain.Attendance, error)
}

type MemberRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Member, error)
}

var (
	ErrMemberNotFound      = errors.New("member not found")
	ErrMemberSuspended     = errors.New("member is suspended or archived")
	ErrSubscriptionExpired = errors.New("membership is not active")
	ErrAlreadyCheckedIn    = errors.New("member already checked in today")
	ErrInvalidCardNumber   = errors.New("invalid card number")
)

type Service struct {
	attendanceRepo AttendanceRepo
	memberRepo     MemberRepo
}

func New(attendanceRepo AttendanceRepo, memberRepo MemberRepo) *Service {
	return &Service{
		attendanceRepo: attendanceRepo,
		memberRepo:     memberRepo,
	}
}

// CheckIn records one attendance per member per day; the unique constraint
// backs the same rule in the database.
func (s *Service) CheckIn(ctx context.Context, memberID, recordedBy int) (*domain.Attendance, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		zap.L().Error("can't find member", zap.Error(err))
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	if !member.IsActive || member.IsArchived {
		return nil, ErrMemberSuspended
	}
	if member.CardNumber != "" && !validate.IsCardNumber(member.CardNumber) {
		return nil, ErrInvalidCardNumber
	}

	now := time.Now()
	if member.MembershipStatus(domain.Date(now)) != domain.StatusActive {
		return nil, ErrSubscriptionExpired
	}

	attendance := &domain.Attendance{
		MemberID:    member.ID,
		Date:        domain.Date(now),
		CheckInTime: now,
		RecordedBy:  recordedBy,
	}
	created, err := s.attendanceRepo.Create(ctx, attendance)
	if err != nil {
		if errors.Is(err, attendancerepo.ErrDuplicateCheckIn) {
			return nil, ErrAlreadyCheckedIn
		}
		zap.L().Error("can't record attendance", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetMemberAttendance(ctx context.Context, memberID int) ([]domain.Attendance, error) {
	records, err := s.attendanceRepo.FindByMemberID(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to fetch attendance", zap.Error(err))
		return nil, err
	}
	return records, nil
}
