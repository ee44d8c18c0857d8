package get_branch_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/api/handlers"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/service/schedule"
)

const (
	msgInvalidBranchID = "некорректный ID филиала"
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

// Handle GET /api/v1/branches/{branchId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branchID, err := strconv.ParseInt(mux.Vars(r)["branchId"], 10, 64)
	if err != nil || branchID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	result, err := h.service.GetBranchSchedule(r.Context(), branchID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBranchID)

		default:
			h.logger.Error("GET /branches/{id}/schedule - Failed: branch_id=%d, error=%v", branchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /branches/{id}/schedule - Fetched schedule: branch_id=%d", branchID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
