package repo

import (
	"github.com/gymstack/gymcore/internal/pg"
	attendancerepo "github.com/gymstack/gymcore/internal/repo/attendance-repo"
	memberrepo "github.com/gymstack/gymcore/internal/repo/member-repo"
	paymentrepo "github.com/gymstack/gymcore/internal/repo/payment-repo"
	planrepo "github.com/gymstack/gymcore/internal/repo/plan-repo"
	userrepo "github.com/gymstack/gymcore/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo       *userrepo.Repository
	MemberRepo     *memberrepo.Repository
	PaymentRepo    *paymentrepo.Repository
	PlanRepo       *planrepo.Repository
	AttendanceRepo *attendancerepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		MemberRepo:     memberrepo.New(conn),
		PaymentRepo:    paymentrepo.New(conn),
		PlanRepo:       planrepo.New(conn),
		AttendanceRepo: attendancerepo.New(conn),
	}
}
