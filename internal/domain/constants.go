package domain

// Default scheduling values
const (
	DefaultGranularityMinutes = 15
)

// Business validation constants
const (
	MinGranularityMinutes = 5
	MaxGranularityMinutes = 240

	MinDurationMinutes = 5
	MaxDurationMinutes = 480 // 8 hours

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxBlockReasonLength        = 255
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses статусы, при которых запись удерживает свой интервал
// в расчете занятости (отмененные записи интервал не удерживают)
var OccupyingStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
