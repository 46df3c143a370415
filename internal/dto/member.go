package dto

type EnrollRequestDTO struct {
	FirstName   string   `json:"first_name" example:"Sara"`
	LastName    string   `json:"last_name" example:"Bennani"`
	Phone       string   `json:"phone" example:"+212612345678"`
	CardNumber  string   `json:"card_number,omitempty" example:"2377225624"`
	Gender      string   `json:"gender,omitempty" example:"F"`
	AgeCategory string   `json:"age_category,omitempty" example:"ADULT"`
	PlanID      int      `json:"plan_id" example:"3"`
	StartDate   string   `json:"start_date,omitempty" example:"2026-08-01"`
	Amount      *float64 `json:"amount,omitempty" example:"150"`
	Method      string   `json:"method,omitempty" example:"CASH"`
}

type RenewRequestDTO struct {
	PlanID *int     `json:"plan_id,omitempty" example:"3"`
	Amount *float64 `json:"amount,omitempty" example:"150"`
	Method string   `json:"method,omitempty" example:"CASH"`
}

type MemberResponseDTO struct {
	ID                int     `json:"id" example:"42"`
	FirstName         string  `json:"first_name" example:"Sara"`
	LastName          string  `json:"last_name" example:"Bennani"`
	Phone             string  `json:"phone" example:"+212612345678"`
	CardNumber        string  `json:"card_number,omitempty" example:"2377225624"`
	Gender            string  `json:"gender,omitempty" example:"F"`
	AgeCategory       string  `json:"age_category,omitempty" example:"ADULT"`
	PlanID            int     `json:"plan_id" example:"3"`
	PlanPrice         float64 `json:"plan_price" example:"200"`
	SubscriptionStart string  `json:"subscription_start,omitempty" example:"2026-08-01"`
	SubscriptionEnd   string  `json:"subscription_end,omitempty" example:"2026-08-31"`
	AmountPaid        float64 `json:"amount_paid" example:"150"`
	RemainingDebt     float64 `json:"remaining_debt" example:"50"`
	Status            string  `json:"status" example:"ACTIVE"`
	DaysRemaining     int     `json:"days_remaining" example:"12"`
	IsActive          bool    `json:"is_active" example:"true"`
	IsArchived        bool    `json:"is_archived" example:"false"`
}

type RecomputeResponseDTO struct {
	MembersUpdated int64  `json:"members_updated" example:"17"`
	Message        string `json:"message"`
}
