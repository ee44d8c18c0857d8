package create_appointment

import (
	"fmt"
	"time"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.BranchID <= 0 {
		return fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}

	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}

	return nil
}

// validateSlot проверяет предлагаемый интервал против расписания и занятости
// Использует ту же семантику полузакрытых интервалов, что и расчет слотов:
// слот, показанный доступным, не может быть отвергнут здесь на том же снимке
func validateSlot(
	hours *domain.WeekdayHours,
	blocks []*domain.Block,
	appointments []*domain.Appointment,
	date time.Time,
	startMinutes int,
	durationMinutes int,
	now time.Time,
	excludeID *int64,
) error {
	span, err := hours.Span()
	if err != nil {
		return fmt.Errorf("%w: invalid business hours: %v", ErrInternal, err)
	}

	candidate := domain.Interval{Start: startMinutes, End: startMinutes + durationMinutes}

	if candidate.Start < span.Start || candidate.End > span.End {
		return ErrOutsideBusinessHours
	}

	if domain.SameDay(date, now) && startMinutes < now.Hour()*60+now.Minute() {
		return ErrTimeInPast
	}

	occupancy, err := domain.BuildOccupancy(hours, blocks, appointments, date, excludeID)
	if err != nil {
		return fmt.Errorf("%w: failed to build occupancy: %v", ErrInternal, err)
	}

	if domain.HasConflict(occupancy, candidate) {
		return ErrSlotNotAvailable
	}

	return nil
}
