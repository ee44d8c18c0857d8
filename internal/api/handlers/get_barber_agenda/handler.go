package get_barber_agenda

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/api/handlers"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/api/middleware"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/service/appointments"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/service/appointments/models"
)

const (
	msgInvalidBarberID = "некорректный ID барбера"
	msgInvalidBranchID = "некорректный параметр branchId"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgAccessDenied    = "доступ запрещен"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/agenda?branchId=&date=&includeInactive=
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

	req := &models.GetBarberAgendaRequest{
		UserID:   userID,
		BarberID: barberID,
	}

	if raw := r.URL.Query().Get("branchId"); raw != "" {
		branchID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || branchID <= 0 {
			handlers.RespondBadRequest(w, msgInvalidBranchID)
			return
		}
		req.BranchID = &branchID
	}

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	req.IncludeInactive = r.URL.Query().Get("includeInactive") == "true"

	result, err := h.service.GetBarberAgenda(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /barbers/{id}/agenda - Access denied: barber_id=%d, user_id=%d", barberID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /barbers/{id}/agenda - Failed: barber_id=%d, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/{id}/agenda - Returned %d appointments: barber_id=%d", result.Total, barberID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
