package reports

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gymstack/gymcore/internal/dto"
	reportservice "github.com/gymstack/gymcore/internal/service/reportservice"
	"github.com/gymstack/gymcore/pkg/utils"
)

type Service interface {
	Aggregate(ctx context.Context, window reportservice.Window, at time.Time) (*reportservice.Summary, error)
	GetDashboard(ctx context.Context, at time.Time) (*reportservice.Dashboard, error)
}

type ReportHandler struct {
	reportService Service
}

func New(reportService Service) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

func referenceDate(r *http.Request) (time.Time, error) {
	param := r.URL.Query().Get("date")
	if param == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", param)
}

// Aggregate godoc
//
//	@Summary		Windowed revenue and debt aggregates
//	@Description	Collected revenue, paid/pending split and outstanding debt for the calendar window containing the reference date
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Param			window	query		string	false	"week | month | year (default month)"
//	@Param			date	query		string	false	"Reference date, YYYY-MM-DD (default today)"
//	@Success		200		{object}	dto.AggregateResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown window or bad date"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reports/aggregate [get]
func (h *ReportHandler) Aggregate(w http.ResponseWriter, r *http.Request) {
	at, err := referenceDate(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date")
		return
	}
	window := reportservice.Window(r.URL.Query().Get("window"))
	if window == "" {
		window = reportservice.WindowMonth
	}

	summary, err := h.reportService.Aggregate(r.Context(), window, at)
	if err != nil {
		if errors.Is(err, reportservice.ErrUnknownWindow) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.AggregateResponseDTO{
		Window:           string(summary.Window),
		From:             summary.From.Format("2006-01-02"),
		To:               summary.To.Format("2006-01-02"),
		CollectedRevenue: summary.CollectedRevenue,
		PaidTotal:        summary.PaidTotal,
		PendingTotal:     summary.PendingTotal,
		OutstandingDebt:  summary.OutstandingDebt,
	})
}

// Dashboard godoc
//
//	@Summary		Dashboard metrics
//	@Description	Member counts, demographics, activity breakdown, financials and today's attendance
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Param			date	query		string	false	"Reference date, YYYY-MM-DD (default today)"
//	@Success		200		{object}	dto.DashboardResponseDTO
//	@Failure		400		{object}	utils.Response	"Bad date"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	at, err := referenceDate(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date")
		return
	}

	dashboard, err := h.reportService.GetDashboard(r.Context(), at)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	breakdown := make([]dto.ActivityCountDTO, len(dashboard.ActivityBreakdown))
	for i, entry := range dashboard.ActivityBreakdown {
		breakdown[i] = dto.ActivityCountDTO{
			ActivityType: entry.ActivityType,
			Count:        entry.Count,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.DashboardResponseDTO{
		Overview: dto.DashboardOverviewDTO{
			TotalMembers:     dashboard.Counts.Total,
			ActiveMembers:    dashboard.Counts.Active,
			ExpiredMembers:   dashboard.Counts.Expired,
			PendingMembers:   dashboard.Counts.Pending,
			ExpiringSoon7Day: dashboard.Counts.ExpiringSoon,
			SuspendedMembers: dashboard.Counts.Suspended,
			AttendanceToday:  dashboard.AttendanceToday,
		},
		Demographics: dto.DashboardDemographicsDTO{
			Men:   dashboard.Demographics.Men,
			Women: dashboard.Demographics.Women,
			Kids:  dashboard.Demographics.Kids,
		},
		Financials: dto.DashboardFinancialsDTO{
			IncomeToday:     dashboard.IncomeToday,
			IncomeThisMonth: dashboard.IncomeThisMonth,
			TotalIncome:     dashboard.TotalIncome,
			BestMonth:       dashboard.BestMonth,
			OutstandingDebt: dashboard.OutstandingDebt,
		},
		ActivityBreakdown: breakdown,
	})
}
