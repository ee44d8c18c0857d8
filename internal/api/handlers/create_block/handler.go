package create_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/api/handlers"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/api/middleware"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/service/schedule"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/service/schedule/models"
)

const (
	msgInvalidBarberID    = "некорректный ID барбера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBlock       = "некорректные параметры блокировки"
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

// Handle POST /api/v1/barbers/{barberId}/blocks
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

	var req CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /barbers/{id}/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateBlock(r.Context(), &models.CreateBlockRequest{
		UserID:    userID,
		BarberID:  barberID,
		BranchID:  req.BranchID,
		Kind:      req.Kind,
		Date:      req.Date,
		Weekdays:  req.Weekdays,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidBlock):
			h.logger.Warn("POST /barbers/{id}/blocks - Invalid block: barber_id=%d, error=%v", barberID, err)
			handlers.RespondBadRequest(w, msgInvalidBlock)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /barbers/{id}/blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /barbers/{id}/blocks - Failed: barber_id=%d, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /barbers/{id}/blocks - Block created: block_id=%d, barber_id=%d, kind=%s",
		result.ID, barberID, req.Kind)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
