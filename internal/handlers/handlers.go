package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/gymstack/gymcore/docs"
	attendancehandlers "github.com/gymstack/gymcore/internal/handlers/attendance"
	authhandlers "github.com/gymstack/gymcore/internal/handlers/auth"
	memberhandlers "github.com/gymstack/gymcore/internal/handlers/members"
	paymenthandlers "github.com/gymstack/gymcore/internal/handlers/payments"
	planhandlers "github.com/gymstack/gymcore/internal/handlers/plans"
	reporthandlers "github.com/gymstack/gymcore/internal/handlers/reports"
	"github.com/gymstack/gymcore/internal/service"
	"github.com/gymstack/gymcore/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type MemberHandler interface {
	Enroll(w http.ResponseWriter, r *http.Request)
	Renew(w http.ResponseWriter, r *http.Request)
	GetMember(w http.ResponseWriter, r *http.Request)
	ListMembers(w http.ResponseWriter, r *http.Request)
	Archive(w http.ResponseWriter, r *http.Request)
	Restore(w http.ResponseWriter, r *http.Request)
	ToggleActive(w http.ResponseWriter, r *http.Request)
	RecomputeLedgers(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	RecordPayment(w http.ResponseWriter, r *http.Request)
	GetMemberPayments(w http.ResponseWriter, r *http.Request)
	GetRecentPayments(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	Aggregate(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	GetMemberAttendance(w http.ResponseWriter, r *http.Request)
}

type PlanHandler interface {
	CreateActivityType(w http.ResponseWriter, r *http.Request)
	ListActivityTypes(w http.ResponseWriter, r *http.Request)
	CreatePlan(w http.ResponseWriter, r *http.Request)
	GetPlan(w http.ResponseWriter, r *http.Request)
	ListPlans(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	MemberHandler     MemberHandler
	PaymentHandler    PaymentHandler
	ReportHandler     ReportHandler
	AttendanceHandler AttendanceHandler
	PlanHandler       PlanHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		MemberHandler:     memberhandlers.New(s.MemberService),
		PaymentHandler:    paymenthandlers.New(s.PaymentService),
		ReportHandler:     reporthandlers.New(s.ReportService),
		AttendanceHandler: attendancehandlers.New(s.AttendanceService),
		PlanHandler:       planhandlers.New(s.PlanService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/members", func(r chi.Router) {
				r.Post("/", h.MemberHandler.Enroll)
				r.Get("/", h.MemberHandler.ListMembers)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.MemberHandler.GetMember)
					r.Post("/renew", h.MemberHandler.Renew)
					r.Post("/archive", h.MemberHandler.Archive)
					r.Post("/restore", h.MemberHandler.Restore)
					r.Post("/toggle-active", h.MemberHandler.ToggleActive)
					r.Post("/payments", h.PaymentHandler.RecordPayment)
					r.Get("/payments", h.PaymentHandler.GetMemberPayments)
					r.Get("/attendance", h.AttendanceHandler.GetMemberAttendance)
				})
			})
			r.Get("/payments", h.PaymentHandler.GetRecentPayments)
			r.Post("/attendance/check-in", h.AttendanceHandler.CheckIn)
			r.Route("/reports", func(r chi.Router) {
				r.Get("/aggregate", h.ReportHandler.Aggregate)
				r.Get("/dashboard", h.ReportHandler.Dashboard)
			})
			r.Route("/plans", func(r chi.Router) {
				r.Post("/", h.PlanHandler.CreatePlan)
				r.Get("/", h.PlanHandler.ListPlans)
				r.Get("/{id}", h.PlanHandler.GetPlan)
			})
			r.Route("/activity-types", func(r chi.Router) {
				r.Post("/", h.PlanHandler.CreateActivityType)
				r.Get("/", h.PlanHandler.ListActivityTypes)
			})
			r.Post("/admin/recompute-ledgers", h.MemberHandler.RecomputeLedgers)
		})
	})

	return r
}
