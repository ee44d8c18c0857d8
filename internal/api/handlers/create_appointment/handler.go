package create_appointment

import (
	"errors"
	"net/http"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/api/handlers"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/api/middleware"
	createAppointment "github.com/mtrevino/BarberPro-SchedulingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgServiceNotFound      = "услуга не найдена"
	msgBranchClosed         = "филиал закрыт в выбранную дату"
	msgDateInPast           = "нельзя записаться на прошедшую дату"
	msgTimeInPast           = "нельзя записаться на прошедшее время"
	msgOutsideBusinessHours = "выбранное время вне часов работы филиала"
	msgSlotNotAvailable     = "выбранный слот недоступен"
	msgSlotBusy             = "слот сейчас бронирует другой клиент, повторите попытку"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondJSON(w, http.StatusUnauthorized, handlers.ErrorResponse{Error: "требуется аутентификация"})
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: client_id=%d, service_id=%d", clientID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrBranchClosed):
			h.logger.Warn("POST /appointments - Branch closed: client_id=%d, branch_id=%d", clientID, req.BranchID)
			handlers.RespondBadRequest(w, msgBranchClosed)

		case errors.Is(err, createAppointment.ErrDateInPast):
			h.logger.Warn("POST /appointments - Date in past: client_id=%d, date=%s", clientID, req.AppointmentDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createAppointment.ErrTimeInPast):
			h.logger.Warn("POST /appointments - Time in past: client_id=%d, time=%s", clientID, req.StartTime)
			handlers.RespondBadRequest(w, msgTimeInPast)

		case errors.Is(err, createAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("POST /appointments - Outside business hours: client_id=%d, time=%s", clientID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: client_id=%d, barber_id=%d", clientID, req.BarberID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrSlotBusy):
			h.logger.Warn("POST /appointments - Slot busy: client_id=%d, barber_id=%d", clientID, req.BarberID)
			handlers.RespondConflict(w, msgSlotBusy)

		case errors.Is(err, createAppointment.ErrInvalidInput), errors.Is(err, createAppointment.ErrInvalidDuration):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, client_id=%d, barber_id=%d",
		result.ID, clientID, req.BarberID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
