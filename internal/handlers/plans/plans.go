package plans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gymstack/gymcore/internal/domain"
	"github.com/gymstack/gymcore/internal/dto"
	planservice "github.com/gymstack/gymcore/internal/service/planservice"
	"github.com/gymstack/gymcore/pkg/utils"
)

type Service interface {
	CreateActivityType(ctx context.Context, name, description string) (*domain.ActivityType, error)
	ListActivityTypes(ctx context.Context) ([]domain.ActivityType, error)
	CreatePlan(ctx context.Context, plan *domain.Plan) (*domain.Plan, error)
	GetPlan(ctx context.Context, id int) (*domain.Plan, error)
	ListPlans(ctx context.Context) ([]domain.Plan, error)
}

type PlanHandler struct {
	planService Service
}

func New(planService Service) *PlanHandler {
	return &PlanHandler{
		planService: planService,
	}
}

// CreateActivityType godoc
//
//	@Summary		Create an activity type
//	@Tags			Plans
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateActivityTypeRequestDTO	true	"Activity type payload"
//	@Success		201		{object}	dto.ActivityTypeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/activity-types [post]
func (h *PlanHandler) CreateActivityType(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateActivityTypeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	activityType, err := h.planService.CreateActivityType(r.Context(), req.Name, req.Description)
	if err != nil {
		if errors.Is(err, planservice.ErrInvalidPlan) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewActivityTypeResponse(activityType))
}

// ListActivityTypes godoc
//
//	@Summary		List activity types
//	@Tags			Plans
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ActivityTypeResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/activity-types [get]
func (h *PlanHandler) ListActivityTypes(w http.ResponseWriter, r *http.Request) {
	activityTypes, err := h.planService.ListActivityTypes(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch activity types")
		return
	}

	response := make([]dto.ActivityTypeResponseDTO, len(activityTypes))
	for i := range activityTypes {
		response[i] = dto.NewActivityTypeResponse(&activityTypes[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreatePlan godoc
//
//	@Summary		Create a subscription plan
//	@Tags			Plans
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePlanRequestDTO	true	"Plan payload"
//	@Success		201		{object}	dto.PlanResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/plans [post]
func (h *PlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePlanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	plan, err := h.planService.CreatePlan(r.Context(), &domain.Plan{
		ActivityTypeID: req.ActivityTypeID,
		Name:           req.Name,
		DurationDays:   req.DurationDays,
		Price:          req.Price,
	})
	if err != nil {
		if errors.Is(err, planservice.ErrInvalidPlan) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewPlanResponse(plan))
}

// GetPlan godoc
//
//	@Summary		Get a plan by id
//	@Tags			Plans
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Plan ID"
//	@Success		200	{object}	dto.PlanResponseDTO
//	@Failure		404	{object}	utils.Response	"Plan not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/plans/{id} [get]
func (h *PlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid plan id")
		return
	}

	plan, err := h.planService.GetPlan(r.Context(), id)
	if err != nil {
		if errors.Is(err, planservice.ErrPlanNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPlanResponse(plan))
}

// ListPlans godoc
//
//	@Summary		List subscription plans
//	@Tags			Plans
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PlanResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/plans [get]
func (h *PlanHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planService.ListPlans(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch plans")
		return
	}

	response := make([]dto.PlanResponseDTO, len(plans))
	for i := range plans {
		response[i] = dto.NewPlanResponse(&plans[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
