package dto

import (
	"time"

	"github.com/gymstack/gymcore/internal/domain"
)

const dateLayout = "2006-01-02"

func NewMemberResponse(m *domain.Member, today time.Time) MemberResponseDTO {
	resp := MemberResponseDTO{
		ID:            m.ID,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Phone:         m.Phone,
		CardNumber:    m.CardNumber,
		Gender:        m.Gender,
		AgeCategory:   m.AgeCategory,
		PlanID:        m.PlanID,
		PlanPrice:     m.PlanPrice,
		AmountPaid:    m.AmountPaid,
		RemainingDebt: m.RemainingDebt(),
		Status:        m.MembershipStatus(today),
		DaysRemaining: m.DaysRemaining(today),
		IsActive:      m.IsActive,
		IsArchived:    m.IsArchived,
	}
	if m.SubscriptionStart != nil {
		resp.SubscriptionStart = m.SubscriptionStart.Format(dateLayout)
	}
	if m.SubscriptionEnd != nil {
		resp.SubscriptionEnd = m.SubscriptionEnd.Format(dateLayout)
	}
	return resp
}

func NewPaymentResponse(p *domain.Payment) PaymentResponseDTO {
	return PaymentResponseDTO{
		ID:          p.ID,
		MemberID:    p.MemberID,
		Amount:      p.Amount,
		Method:      p.Method,
		PaymentDate: p.PaymentDate.Format(dateLayout),
		PeriodStart: p.PeriodStart.Format(dateLayout),
		PeriodEnd:   p.PeriodEnd.Format(dateLayout),
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
	}
}

func NewAttendanceResponse(a *domain.Attendance) AttendanceResponseDTO {
	return AttendanceResponseDTO{
		ID:          a.ID,
		MemberID:    a.MemberID,
		Date:        a.Date.Format(dateLayout),
		CheckInTime: a.CheckInTime,
	}
}

func NewPlanResponse(p *domain.Plan) PlanResponseDTO {
	return PlanResponseDTO{
		ID:             p.ID,
		ActivityTypeID: p.ActivityTypeID,
		Name:           p.Name,
		DurationDays:   p.DurationDays,
		Price:          p.Price,
		IsActive:       p.IsActive,
	}
}

func NewActivityTypeResponse(a *domain.ActivityType) ActivityTypeResponseDTO {
	return ActivityTypeResponseDTO{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		IsActive:    a.IsActive,
	}
}
