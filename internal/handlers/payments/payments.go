package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gymstack/gymcore/internal/domain"
	"github.com/gymstack/gymcore/internal/dto"
	paymentservice "github.com/gymstack/gymcore/internal/service/paymentservice"
	"github.com/gymstack/gymcore/pkg/auth"
	"github.com/gymstack/gymcore/pkg/utils"
)

type Service interface {
	RecordPayment(ctx context.Context, cmd paymentservice.Command) (*domain.Member, error)
	GetMemberPayments(ctx context.Context, memberID int) ([]domain.Payment, error)
	GetRecentPayments(ctx context.Context, limit int) ([]domain.Payment, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// RecordPayment godoc
//
//	@Summary		Record a payment
//	@Description	Persist a payment and reconcile the member ledger in one transaction: the first payment of a new period resets the paid amount, a payment for the open period accumulates it
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Member ID"
//	@Param			request	body		dto.RecordPaymentRequestDTO	true	"Payment payload"
//	@Success		200		{object}	dto.MemberResponseDTO		"Updated member ledger"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		404		{object}	utils.Response				"Member not found"
//	@Failure		409		{object}	utils.Response				"Concurrent ledger modification"
//	@Failure		422		{object}	utils.Response				"Invalid period or amount"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/members/{id}/payments [post]
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	memberID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member id")
		return
	}

	var req dto.RecordPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	periodStart, err := time.Parse("2006-01-02", req.PeriodStart)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid period_start")
		return
	}
	periodEnd, err := time.Parse("2006-01-02", req.PeriodEnd)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid period_end")
		return
	}

	member, err := h.paymentService.RecordPayment(r.Context(), paymentservice.Command{
		MemberID:    memberID,
		Amount:      req.Amount,
		Method:      req.Method,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Notes:       req.Notes,
		CreatedBy:   userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrMemberNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, paymentservice.ErrConcurrentModification):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, paymentservice.ErrInvalidPeriod), errors.Is(err, paymentservice.ErrNegativeAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMemberResponse(member, domain.Date(time.Now())))
}

// GetMemberPayments godoc
//
//	@Summary		Get member payment history
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Member ID"
//	@Success		200	{array}		dto.PaymentResponseDTO
//	@Success		204	{object}	utils.Response	"No payments found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/members/{id}/payments [get]
func (h *PaymentHandler) GetMemberPayments(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member id")
		return
	}

	payments, err := h.paymentService.GetMemberPayments(r.Context(), memberID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch payments")
		return
	}
	if len(payments) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Payments not found")
		return
	}

	response := make([]dto.PaymentResponseDTO, len(payments))
	for i := range payments {
		response[i] = dto.NewPaymentResponse(&payments[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetRecentPayments godoc
//
//	@Summary		Get recent payments across all members
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum number of rows (default 100)"
//	@Success		200		{array}		dto.PaymentResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payments [get]
func (h *PaymentHandler) GetRecentPayments(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	payments, err := h.paymentService.GetRecentPayments(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch payments")
		return
	}

	response := make([]dto.PaymentResponseDTO, len(payments))
	for i := range payments {
		response[i] = dto.NewPaymentResponse(&payments[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
