package dto

import "time"

type RecordPaymentRequestDTO struct {
	Amount      float64 `json:"amount" example:"150"`
	Method      string  `json:"method,omitempty" example:"CASH"`
	PeriodStart string  `json:"period_start" example:"2026-08-01"`
	PeriodEnd   string  `json:"period_end" example:"2026-08-31"`
	Notes       string  `json:"notes,omitempty" example:"Debt payment"`
}

type PaymentResponseDTO struct {
	ID          int       `json:"id" example:"7"`
	MemberID    int       `json:"member_id" example:"42"`
	Amount      float64   `json:"amount" example:"150"`
	Method      string    `json:"method" example:"CASH"`
	PaymentDate string    `json:"payment_date" example:"2026-08-12"`
	PeriodStart string    `json:"period_start" example:"2026-08-01"`
	PeriodEnd   string    `json:"period_end" example:"2026-08-31"`
	Notes       string    `json:"notes,omitempty" example:"Debt payment"`
	CreatedAt   time.Time `json:"created_at" example:"2026-08-12T16:09:57+03:00"`
}
