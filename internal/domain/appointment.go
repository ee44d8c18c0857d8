package domain

import (
	"time"

	"github.com/mtrevino/BarberPro-SchedulingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// allowedTransitions defines the appointment lifecycle:
// pending -> confirmed -> completed, with cancellation possible from
// pending and confirmed. Completed and cancelled are terminal.
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// Appointment represents a barber appointment in the system
type Appointment struct {
	ID              int64
	ClientID        int64
	BranchID        int64
	BarberID        int64
	ServiceID       int64
	AppointmentDate time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized service data for history
	ServiceName  string
	ServicePrice float64

	Notes *string

	// Idempotent completion marker: set exactly once, atomically with the
	// cash ledger entry insertion
	RegisteredInLedger bool
	LedgerEntryID      *int64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanTransitionTo returns true if the lifecycle allows moving to the given status
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[a.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transition is defined for the status
func (a *Appointment) IsTerminal() bool {
	return len(allowedTransitions[a.Status]) == 0
}

// OccupiesSlot returns true if the appointment holds its time interval.
// Cancelled appointments free their slot immediately.
func (a *Appointment) OccupiesSlot() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.CanTransitionTo(StatusCancelled)
}

// CanBeRescheduled returns true if the appointment can be moved to another slot
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// Interval returns the occupied [start, start+duration) window in minutes
// since midnight
func (a *Appointment) Interval() (Interval, error) {
	start, err := a.StartTime.Minutes()
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: start + a.DurationMinutes}, nil
}

// ValidStatus returns true if the given string is a known appointment status
func ValidStatus(s AppointmentStatus) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// BarberAgendaFilter фильтр для получения записей барбера
type BarberAgendaFilter struct {
	BarberID        int64      // Обязательный параметр
	BranchID        *int64     // Фильтр по филиалу (опционально)
	Date            *time.Time // Конкретная дата (опционально)
	IncludeInactive bool       // Включать ли отмененные записи
}
