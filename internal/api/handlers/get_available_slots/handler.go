package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/api/handlers"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
	getAvailableSlots "github.com/mtrevino/BarberPro-SchedulingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidBranchID    = "некорректный ID филиала"
	msgInvalidBarberID    = "некорректный ID барбера"
	msgInvalidServiceID   = "некорректный параметр serviceId"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidGranularity = "некорректный параметр granularity"
	msgServiceNotFound    = "услуга не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/branches/{branchId}/barbers/{barberId}/available-slots?serviceId=&date=&granularity=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	branchID, err := strconv.ParseInt(vars["branchId"], 10, 64)
	if err != nil || branchID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	barberID, err := strconv.ParseInt(vars["barberId"], 10, 64)
	if err != nil || barberID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	serviceID, err := strconv.ParseInt(r.URL.Query().Get("serviceId"), 10, 64)
	if err != nil || serviceID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	granularity := 0
	if raw := r.URL.Query().Get("granularity"); raw != "" {
		granularity, err = strconv.Atoi(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidGranularity)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		BranchID:           branchID,
		BarberID:           barberID,
		ServiceID:          serviceID,
		Date:               date,
		GranularityMinutes: granularity,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /available-slots - Service not found: branch_id=%d, service_id=%d", branchID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidGranularity):
			h.logger.Warn("GET /available-slots - Invalid granularity: %v", err)
			handlers.RespondBadRequest(w, msgInvalidGranularity)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput), errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /available-slots - Failed: branch_id=%d, barber_id=%d, error=%v", branchID, barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - Returned %d slots: branch_id=%d, barber_id=%d, date=%s",
		len(result.Slots), branchID, barberID, result.Date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
