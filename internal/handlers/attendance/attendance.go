package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gymstack/gymcore/internal/domain"
	"github.com/gymstack/gymcore/internal/dto"
	attendanceservice "github.com/gymstack/gymcore/internal/service/attendanceservice"
	"github.com/gymstack/gymcore/pkg/auth"
	"github.com/gymstack/gymcore/pkg/utils"
)

type Service interface {
	CheckIn(ctx context.Context, memberID, recordedBy int) (*domain.Attendance, error)
	GetMemberAttendance(ctx context.Context, memberID int) ([]domain.Attendance, error)
}

type AttendanceHandler struct {
	attendanceService Service
}

func New(attendanceService Service) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
	}
}

// CheckIn godoc
//
//	@Summary		Check a member in for today
//	@Description	One visit per member per day; a second check-in on the same date is rejected
//	@Tags			Attendance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CheckInRequestDTO	true	"Check-in payload"
//	@Success		200		{object}	dto.AttendanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Member not found"
//	@Failure		409		{object}	utils.Response	"Already checked in today"
//	@Failure		422		{object}	utils.Response	"Membership suspended, expired or card invalid"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CheckInRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.attendanceService.CheckIn(r.Context(), req.MemberID, userID)
	if err != nil {
		switch {
		case errors.Is(err, attendanceservice.ErrMemberNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, attendanceservice.ErrAlreadyCheckedIn):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, attendanceservice.ErrMemberSuspended),
			errors.Is(err, attendanceservice.ErrSubscriptionExpired),
			errors.Is(err, attendanceservice.ErrInvalidCardNumber):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAttendanceResponse(record))
}

// GetMemberAttendance godoc
//
//	@Summary		Get a member's attendance history
//	@Tags			Attendance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Member ID"
//	@Success		200	{array}		dto.AttendanceResponseDTO
//	@Success		204	{object}	utils.Response	"No attendance records"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/members/{id}/attendance [get]
func (h *AttendanceHandler) GetMemberAttendance(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member id")
		return
	}

	records, err := h.attendanceService.GetMemberAttendance(r.Context(), memberID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch attendance")
		return
	}
	if len(records) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Attendance not found")
		return
	}

	response := make([]dto.AttendanceResponseDTO, len(records))
	for i := range records {
		response[i] = dto.NewAttendanceResponse(&records[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
