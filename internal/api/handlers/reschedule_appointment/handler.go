package reschedule_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/api/handlers"
	rescheduleAppointment "github.com/mtrevino/BarberPro-SchedulingService/internal/usecase/reschedule_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgAppointmentNotFound  = "запись не найдена"
	msgNotReschedulable     = "запись нельзя перенести в ее текущем статусе"
	msgBranchClosed         = "филиал закрыт в выбранную дату"
	msgDateInPast           = "нельзя перенести запись на прошедшую дату"
	msgTimeInPast           = "нельзя перенести запись на прошедшее время"
	msgOutsideBusinessHours = "выбранное время вне часов работы филиала"
	msgSlotNotAvailable     = "выбранный слот недоступен"
	msgSlotBusy             = "слот сейчас бронирует другой клиент, повторите попытку"
)

type Handler struct {
	useCase RescheduleAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || appointmentID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req RescheduleAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, rescheduleAppointment.ErrNotReschedulable):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Not reschedulable: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgNotReschedulable)

		case errors.Is(err, rescheduleAppointment.ErrBranchClosed):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Branch closed: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgBranchClosed)

		case errors.Is(err, rescheduleAppointment.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, rescheduleAppointment.ErrTimeInPast):
			handlers.RespondBadRequest(w, msgTimeInPast)

		case errors.Is(err, rescheduleAppointment.ErrOutsideBusinessHours):
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, rescheduleAppointment.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Slot not available: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, rescheduleAppointment.ErrSlotBusy):
			handlers.RespondConflict(w, msgSlotBusy)

		case errors.Is(err, rescheduleAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /appointments/{id}/reschedule - Failed: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/reschedule - Rescheduled: appointment_id=%d, new_date=%s, new_time=%s",
		appointmentID, req.NewDate, req.NewStartTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
