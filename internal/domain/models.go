package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type ActivityType struct {
	ID          int       `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
}

type Plan struct {
	ID             int       `db:"id"`
	ActivityTypeID int       `db:"activity_type_id"`
	Name           string    `db:"name"`
	DurationDays   int       `db:"duration_days"`
	Price          float64   `db:"price"`
	IsActive       bool      `db:"is_active"`
	CreatedAt      time.Time `db:"created_at"`
}

const (
	GenderMale   string = "M"
	GenderFemale string = "F"

	AgeCategoryAdult string = "ADULT"
	AgeCategoryChild string = "CHILD"
)

const (
	// StatusActive current date is on or before subscription_end;
	StatusActive string = "ACTIVE"
	// StatusExpired current date is past subscription_end;
	StatusExpired string = "EXPIRED"
	// StatusPending no subscription dates set, no payment recorded yet.
	StatusPending string = "PENDING"
)

// Member is the per-member ledger: plan price snapshot, current billing
// period bounds and the amount paid for that period only. AmountPaid is
// written exclusively by the payment reconciler.
type Member struct {
	ID                int        `db:"id"`
	FirstName         string     `db:"first_name"`
	LastName          string     `db:"last_name"`
	Phone             string     `db:"phone"`
	CardNumber        string     `db:"card_number"`
	Gender            string     `db:"gender"`
	AgeCategory       string     `db:"age_category"`
	ActivityTypeID    int        `db:"activity_type_id"`
	PlanID            int        `db:"plan_id"`
	PlanPrice         float64    `db:"plan_price"`
	SubscriptionStart *time.Time `db:"subscription_start"`
	SubscriptionEnd   *time.Time `db:"subscription_end"`
	AmountPaid        float64    `db:"amount_paid"`
	IsActive          bool       `db:"is_active"`
	IsArchived        bool       `db:"is_archived"`
	ArchivedAt        *time.Time `db:"archived_at"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

// RemainingDebt derives from the stored AmountPaid, never from payment
// history, and never reports a negative value.
func (m *Member) RemainingDebt() float64 {
	debt := m.PlanPrice - m.AmountPaid
	if debt < 0 {
		return 0
	}
	return debt
}

func (m *Member) MembershipStatus(today time.Time) string {
	if m.SubscriptionStart == nil || m.SubscriptionEnd == nil {
		return StatusPending
	}
	if !today.After(*m.SubscriptionEnd) {
		return StatusActive
	}
	return StatusExpired
}

func (m *Member) DaysRemaining(today time.Time) int {
	if m.SubscriptionEnd == nil {
		return 0
	}
	remaining := int(m.SubscriptionEnd.Sub(today).Hours() / 24)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

const (
	PaymentMethodCash     string = "CASH"
	PaymentMethodCard     string = "CARD"
	PaymentMethodTransfer string = "TRANSFER"
)

// Payment is append-only: once recorded it is never updated, only its
// creation-time effect on the member ledger matters.
type Payment struct {
	ID          int       `db:"id"`
	MemberID    int       `db:"member_id"`
	PlanID      int       `db:"plan_id"`
	Amount      float64   `db:"amount"`
	Method      string    `db:"method"`
	PaymentDate time.Time `db:"payment_date"`
	PeriodStart time.Time `db:"period_start"`
	PeriodEnd   time.Time `db:"period_end"`
	Notes       string    `db:"notes"`
	CreatedBy   int       `db:"created_by"`
	CreatedAt   time.Time `db:"created_at"`
}

type Attendance struct {
	ID          int       `db:"id"`
	MemberID    int       `db:"member_id"`
	Date        time.Time `db:"date"`
	CheckInTime time.Time `db:"check_in_time"`
	RecordedBy  int       `db:"recorded_by"`
	CreatedAt   time.Time `db:"created_at"`
}

// Date truncates t to a calendar date in UTC, the precision the ledger and
// payment periods are stored with.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type MemberFilter struct {
	Status   string
	HasDebt  *bool
	Archived bool
}

type MemberCounts struct {
	Total        int
	Active       int
	Expired      int
	Pending      int
	ExpiringSoon int
	Suspended    int
}

// MemberDemographics splits the roster into adult men, adult women and kids.
// Kids are counted by age category alone regardless of gender.
type MemberDemographics struct {
	Men   int
	Women int
	Kids  int
}

type ActivityCount struct {
	ActivityType string
	Count        int
}
