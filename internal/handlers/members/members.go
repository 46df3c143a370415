package members

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
	memberservice "github.com/gymstack/gymcore/internal/service/memberservice"
	"github.com/gymstack/gymcore/internal/service/paymentservice"
	"github.com/gymstack/gymcore/pkg/auth"
	"github.com/gymstack/gymcore/pkg/utils"
)

type Service interface {
	Enroll(ctx context.Context, input memberservice.EnrollInput) (*domain.Member, error)
	Renew(ctx context.Context, memberID int, input memberservice.RenewInput) (*domain.Member, error)
	GetMember(ctx context.Context, id int) (*domain.Member, error)
	ListMembers(ctx context.Context, filter domain.MemberFilter) ([]domain.Member, error)
	Archive(ctx context.Context, id int) (*domain.Member, error)
	Restore(ctx context.Context, id int) (*domain.Member, error)
	ToggleActive(ctx context.Context, id int) (*domain.Member, error)
	RecomputeLedgers(ctx context.Context) (int64, error)
}

type MemberHandler struct {
	memberService Service
}

func New(memberService Service) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

func memberID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// Enroll godoc
//
//	@Summary		Enroll a new member
//	@Description	Create a member, compute the first billing period from the plan and record the initial payment
//	@Tags			Members
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.EnrollRequestDTO	true	"Enrollment payload"
//	@Success		200		{object}	dto.MemberResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Plan not found"
//	@Failure		422		{object}	utils.Response	"Invalid card number"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/members [post]
func (h *MemberHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.EnrollRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.PlanID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "first_name, last_name and plan_id are required")
		return
	}

	input := memberservice.EnrollInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		CardNumber:  req.CardNumber,
		Gender:      req.Gender,
		AgeCategory: req.AgeCategory,
		PlanID:      req.PlanID,
		Amount:      req.Amount,
		Method:      req.Method,
		CreatedBy:   userID,
	}
	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid start_date")
			return
		}
		input.StartDate = &start
	}

	member, err := h.memberService.Enroll(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, memberservice.ErrPlanNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, memberservice.ErrInvalidCardNumber):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMemberResponse(member, domain.Date(time.Now())))
}

// Renew godoc
//
//	@Summary		Renew a membership
//	@Description	Compute the next billing period and record the renewal payment in one transaction
//	@Tags			Members
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Member ID"
//	@Param			request	body		dto.RenewRequestDTO	true	"Renewal payload"
//	@Success		200		{object}	dto.MemberResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"Member or plan not found"
//	@Failure		409		{object}	utils.Response	"Concurrent ledger modification"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/members/{id}/renew [post]
func (h *MemberHandler) Renew(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := memberID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member id")
		return
	}
	var req dto.RenewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	member, err := h.memberService.Renew(r.Context(), id, memberservice.RenewInput{
		PlanID:    req.PlanID,
		Amount:    req.Amount,
		Method:    req.Method,
		CreatedBy: userID,
	})
	if err != nil {
		respondMemberError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMemberResponse(member, domain.Date(time.Now())))
}

// GetMember godoc
//
//	@Summary		Get a member
//	@Description	Retrieve a member ledger with derived debt and status
//	@Tags			Members
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Member ID"
//	@Success		200	{object}	dto.MemberResponseDTO
//	@Failure		404	{object}	utils.Response	"Member not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/members/{id} [get]
func (h *MemberHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	id, err := memberID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member id")
		return
	}
	member, err := h.memberService.GetMember(r.Context(), id)
	if err != nil {
		respondMemberError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMemberResponse(member, domain.Date(time.Now())))
}

// ListMembers godoc
//
//	@Summary		List members
//	@Description	List members filtered by status, debt and archived flag
//	@Tags			Members
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status		query		string	false	"ACTIVE | EXPIRED | PENDING"
//	@Param			has_debt	query		bool	false	"Only members with (or without) remaining debt"
//	@Param			archived	query		bool	false	"Show archived members"
//	@Success		200			{array}		dto.MemberResponseDTO
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/members [get]
func (h *MemberHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	filter := domain.MemberFilter{
		Status:   r.URL.Query().Get("status"),
		Archived: r.URL.Query().Get("archived") == "true",
	}
	if v := r.URL.Query().Get("has_debt"); v != "" {
		hasDebt := v == "true"
		filter.HasDebt = &hasDebt
	}

	members, err := h.memberService.ListMembers(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	today := domain.Date(time.Now())
	response := make([]dto.MemberResponseDTO, len(members))
	for i := range members {
		response[i] = dto.NewMemberResponse(&members[i], today)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Archive godoc
//
//	@Summary		Archive a member
//	@Description	Soft-delete a member; ledger history is preserved
//	@Tags			Members
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Member ID"
//	@Success		200	{object}	dto.MemberResponseDTO
//	@Failure		404	{object}	utils.Response	"Member not found"
//	@Failure		409	{object}	utils.Response	"Member already archived"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/members/{id}/archive [post]
func (h *MemberHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.memberService.Archive)
}

// Restore godoc
//
//	@Summary		Restore an archived member
//	@Tags			Members
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Member ID"
//	@Success		200	{object}	dto.MemberResponseDTO
//	@Failure		404	{object}	utils.Response	"Member not found"
//	@Failure		409	{object}	utils.Response	"Member is not archived"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/members/{id}/restore [post]
func (h *MemberHandler) Restore(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.memberService.Restore)
}

// ToggleActive godoc
//
//	@Summary		Suspend or reactivate a member
//	@Tags			Members
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Member ID"
//	@Success		200	{object}	dto.MemberResponseDTO
//	@Failure		404	{object}	utils.Response	"Member not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/members/{id}/toggle-active [post]
func (h *MemberHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.memberService.ToggleActive)
}

func (h *MemberHandler) lifecycle(w http.ResponseWriter, r *http.Request, op func(context.Context, int) (*domain.Member, error)) {
	id, err := memberID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member id")
		return
	}
	member, err := op(r.Context(), id)
	if err != nil {
		respondMemberError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMemberResponse(member, domain.Date(time.Now())))
}

// RecomputeLedgers godoc
//
//	@Summary		Recompute member ledgers
//	@Description	Operator-triggered repair pass rebuilding amount_paid from current-period payments
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.RecomputeResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/recompute-ledgers [post]
func (h *MemberHandler) RecomputeLedgers(w http.ResponseWriter, r *http.Request) {
	affected, err := h.memberService.RecomputeLedgers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RecomputeResponseDTO{
		MembersUpdated: affected,
		Message:        "ledger recompute finished",
	})
}

func respondMemberError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, memberservice.ErrMemberNotFound), errors.Is(err, memberservice.ErrPlanNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, memberservice.ErrAlreadyArchived), errors.Is(err, memberservice.ErrNotArchived):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, paymentservice.ErrConcurrentModification):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, paymentservice.ErrInvalidPeriod), errors.Is(err, paymentservice.ErrNegativeAmount):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
