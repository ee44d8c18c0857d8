package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrBranchClosed возвращается, когда филиал закрыт в указанную дату
	ErrBranchClosed = errors.New("create_appointment: branch is closed on this date")

	// ErrDateInPast возвращается при попытке записи на прошедшую дату
	ErrDateInPast = errors.New("create_appointment: date is in the past")

	// ErrTimeInPast возвращается при попытке записи на прошедшее время сегодня
	ErrTimeInPast = errors.New("create_appointment: time is in the past")

	// ErrOutsideBusinessHours возвращается, когда интервал записи выходит
	// за часы работы филиала
	ErrOutsideBusinessHours = errors.New("create_appointment: slot is outside business hours")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с
	// обедом, блокировкой барбера или существующей записью
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrSlotBusy возвращается, когда слот прямо сейчас бронирует другой запрос
	ErrSlotBusy = errors.New("create_appointment: slot is being booked, please retry")

	// ErrInvalidDuration возвращается при некорректной длительности услуги
	ErrInvalidDuration = errors.New("create_appointment: invalid duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
