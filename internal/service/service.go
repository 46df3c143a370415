package service

import (
	"github.com/gymstack/gymcore/internal/pg"
	"github.com/gymstack/gymcore/internal/repo"
	"github.com/gymstack/gymcore/internal/service/attendanceservice"
	"github.com/gymstack/gymcore/internal/service/authservice"
	"github.com/gymstack/gymcore/internal/service/memberservice"
	"github.com/gymstack/gymcore/internal/service/paymentservice"
	"github.com/gymstack/gymcore/internal/service/planservice"
	"github.com/gymstack/gymcore/internal/service/reportservice"
	pkgauth "github.com/gymstack/gymcore/pkg/auth"
)

type Services struct {
	AuthService       *authservice.Service
	MemberService     *memberservice.Service
	PaymentService    *paymentservice.Service
	ReportService     *reportservice.Service
	AttendanceService *attendanceservice.Service
	PlanService       *planservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	paymentService := paymentservice.New(repo.MemberRepo, repo.PaymentRepo, txManager)
	memberService := memberservice.New(repo.MemberRepo, repo.PlanRepo, paymentService)
	reportService := reportservice.New(repo.PaymentRepo, repo.MemberRepo, repo.AttendanceRepo)
	attendanceService := attendanceservice.New(repo.AttendanceRepo, repo.MemberRepo)
	planService := planservice.New(repo.PlanRepo)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:       authService,
		MemberService:     memberService,
		PaymentService:    paymentService,
		ReportService:     reportService,
		AttendanceService: attendanceService,
		PlanService:       planService,
	}
}
