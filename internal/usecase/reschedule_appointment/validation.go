package reschedule_appointment

import (
	"fmt"
	"time"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if req.NewDate.IsZero() {
		return fmt.Errorf("%w: newDate is required", ErrInvalidInput)
	}

	if req.NewStartTime.IsZero() {
		return fmt.Errorf("%w: newStartTime is required", ErrInvalidInput)
	}

	if err := req.NewStartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid newStartTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateSlot проверяет новый интервал против расписания и занятости
// Собственный интервал записи исключается через excludeID: перенос на
// пересекающееся со старым временем место допустим
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
