package reschedule_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrNotReschedulable возвращается, когда статус записи не допускает перенос
	ErrNotReschedulable = errors.New("reschedule_appointment: appointment cannot be rescheduled in its current status")

	// ErrBranchClosed возвращается, когда филиал закрыт в новую дату
	ErrBranchClosed = errors.New("reschedule_appointment: branch is closed on this date")

	// ErrDateInPast возвращается при переносе на прошедшую дату
	ErrDateInPast = errors.New("reschedule_appointment: date is in the past")

	// ErrTimeInPast возвращается при переносе на прошедшее время сегодня
	ErrTimeInPast = errors.New("reschedule_appointment: time is in the past")

	// ErrOutsideBusinessHours возвращается, когда новый интервал выходит
	// за часы работы филиала
	ErrOutsideBusinessHours = errors.New("reschedule_appointment: slot is outside business hours")

	// ErrSlotNotAvailable возвращается, когда новый интервал пересекается с
	// обедом, блокировкой барбера или другой записью
	ErrSlotNotAvailable = errors.New("reschedule_appointment: slot is not available")

	// ErrSlotBusy возвращается, когда слот прямо сейчас бронирует другой запрос
	ErrSlotBusy = errors.New("reschedule_appointment: slot is being booked, please retry")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
