package complete_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/api/handlers"
	completeAppointment "github.com/mtrevino/BarberPro-SchedulingService/internal/usecase/complete_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgAppointmentNotFound  = "запись не найдена"
	msgInvalidTransition    = "запись нельзя завершить в ее текущем статусе"
)

type Handler struct {
	useCase CompleteAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CompleteAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/complete
// Идемпотентный endpoint: повторный запрос возвращает 200 с
// alreadyCompleted=true и существующей кассовой операцией
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || appointmentID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req CompleteAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/complete - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &completeAppointment.Request{
		AppointmentID: appointmentID,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		switch {
		case errors.Is(err, completeAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/complete - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, completeAppointment.ErrInvalidTransition):
			h.logger.Warn("PATCH /appointments/{id}/complete - Invalid transition: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, completeAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/complete - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /appointments/{id}/complete - Failed: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/complete - Completed: appointment_id=%d, ledger_entry_id=%d, already_completed=%v",
		appointmentID, result.LedgerEntryID, result.AlreadyCompleted)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
