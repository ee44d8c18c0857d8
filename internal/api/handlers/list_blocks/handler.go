package list_blocks

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

// Handle GET /api/v1/barbers/{barberId}/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondJSON(w, http.StatusUnauthorized, handlers.ErrorResponse{Error: "требуется аутентификация"})
		return
	}

	barberID, err := strconv.ParseInt(mux.Vars(r)["barberId"], 10, 64)
	if err != nil || barberID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	// Свои блокировки видит только сам барбер
	if userID != barberID {
		h.logger.Warn("GET /barbers/{id}/blocks - Access denied: barber_id=%d, user_id=%d", barberID, userID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	result, err := h.service.ListBlocks(r.Context(), barberID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBarberID)

		default:
			h.logger.Error("GET /barbers/{id}/blocks - Failed: barber_id=%d, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/{id}/blocks - Returned %d blocks: barber_id=%d", result.Total, barberID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
