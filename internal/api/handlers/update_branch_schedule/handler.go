package update_branch_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/api/handlers"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/service/schedule"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/service/schedule/models"
)

const (
	msgInvalidBranchID    = "некорректный ID филиала"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyDays          = "список дней не может быть пустым"
	msgInvalidHours       = "некорректные часы работы"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/branches/{branchId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branchID, err := strconv.ParseInt(mux.Vars(r)["branchId"], 10, 64)
	if err != nil || branchID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	var req UpdateBranchScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /branches/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if len(req.Days) == 0 {
		handlers.RespondBadRequest(w, msgEmptyDays)
		return
	}

	for _, day := range req.Days {
		_, err := h.service.UpdateWeekdayHours(r.Context(), &models.UpdateWeekdayHoursRequest{
			BranchID:   branchID,
			Weekday:    day.Weekday,
			IsOpen:     day.IsOpen,
			OpensAt:    day.OpensAt,
			ClosesAt:   day.ClosesAt,
			LunchStart: day.LunchStart,
			LunchEnd:   day.LunchEnd,
		})
		if err != nil {
			switch {
			case errors.Is(err, schedule.ErrInvalidHours):
				h.logger.Warn("PUT /branches/{id}/schedule - Invalid hours: branch_id=%d, weekday=%d, error=%v",
					branchID, day.Weekday, err)
				handlers.RespondBadRequest(w, msgInvalidHours)

			case errors.Is(err, schedule.ErrInvalidInput):
				h.logger.Warn("PUT /branches/{id}/schedule - Invalid input: %v", err)
				handlers.RespondBadRequest(w, msgInvalidRequestBody)

			default:
				h.logger.Error("PUT /branches/{id}/schedule - Failed: branch_id=%d, error=%v", branchID, err)
				handlers.RespondInternalError(w)
			}
			return
		}
	}

	result, err := h.service.GetBranchSchedule(r.Context(), branchID)
	if err != nil {
		h.logger.Error("PUT /branches/{id}/schedule - Failed to fetch updated schedule: branch_id=%d, error=%v", branchID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /branches/{id}/schedule - Updated %d days: branch_id=%d", len(req.Days), branchID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
