package delete_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/api/handlers"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/api/middleware"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/service/schedule"
)

const (
	msgInvalidBarberID = "некорректный ID барбера"
	msgInvalidBlockID  = "некорректный ID блокировки"
	msgBlockNotFound   = "блокировка не найдена"
	msgAccessDenied    = "доступ запрещен"
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

// Handle DELETE /api/v1/barbers/{barberId}/blocks/{blockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondJSON(w, http.StatusUnauthorized, handlers.ErrorResponse{Error: "требуется аутентификация"})
		return
	}

	vars := mux.Vars(r)

	barberID, err := strconv.ParseInt(vars["barberId"], 10, 64)
	if err != nil || barberID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	blockID, err := strconv.ParseInt(vars["blockId"], 10, 64)
	if err != nil || blockID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	// Удалять блокировки может только сам барбер
	if userID != barberID {
		h.logger.Warn("DELETE /barbers/{id}/blocks/{blockId} - Access denied: barber_id=%d, user_id=%d", barberID, userID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	if err := h.service.DeleteBlock(r.Context(), blockID, barberID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBlockNotFound):
			h.logger.Warn("DELETE /barbers/{id}/blocks/{blockId} - Not found: block_id=%d", blockID)
			handlers.RespondNotFound(w, msgBlockNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBlockID)

		default:
			h.logger.Error("DELETE /barbers/{id}/blocks/{blockId} - Failed: block_id=%d, error=%v", blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /barbers/{id}/blocks/{blockId} - Deleted: block_id=%d, barber_id=%d", blockID, barberID)
	handlers.RespondNoContent(w)
}
