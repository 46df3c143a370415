package dto

type AggregateResponseDTO struct {
	Window           string  `json:"window" example:"month"`
	From             string  `json:"from" example:"2026-08-01"`
	To               string  `json:"to" example:"2026-09-01"`
	CollectedRevenue float64 `json:"collected_revenue" example:"4200"`
	PaidTotal        float64 `json:"paid_total" example:"4200"`
	PendingTotal     float64 `json:"pending_total" example:"380"`
	OutstandingDebt  float64 `json:"outstanding_debt" example:"760"`
}

type DashboardOverviewDTO struct {
	TotalMembers     int `json:"total_members" example:"120"`
	ActiveMembers    int `json:"active_members" example:"96"`
	ExpiredMembers   int `json:"expired_members" example:"18"`
	PendingMembers   int `json:"pending_members" example:"6"`
	ExpiringSoon7Day int `json:"expiring_soon_7_days" example:"9"`
	SuspendedMembers int `json:"suspended_members" example:"2"`
	AttendanceToday  int `json:"attendance_today" example:"34"`
}

type DashboardFinancialsDTO struct {
	IncomeToday     float64 `json:"income_today" example:"600"`
	IncomeThisMonth float64 `json:"income_this_month" example:"4200"`
	TotalIncome     float64 `json:"total_income" example:"56300"`
	BestMonth       float64 `json:"best_month" example:"6100"`
	OutstandingDebt float64 `json:"outstanding_debt" example:"760"`
}

type DashboardDemographicsDTO struct {
	Men   int `json:"men" example:"70"`
	Women int `json:"women" example:"35"`
	Kids  int `json:"kids" example:"15"`
}

type ActivityCountDTO struct {
	ActivityType string `json:"activity_type" example:"Musculation"`
	Count        int    `json:"count" example:"80"`
}

type DashboardResponseDTO struct {
	Overview          DashboardOverviewDTO     `json:"overview"`
	Demographics      DashboardDemographicsDTO `json:"demographics"`
	Financials        DashboardFinancialsDTO   `json:"financials"`
	ActivityBreakdown []ActivityCountDTO       `json:"activity_breakdown"`
}
