package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда у филиала нет расписания
	ErrScheduleNotFound = errors.New("branch schedule not found")

	// ErrBlockNotFound возвращается, когда блокировка не найдена
	ErrBlockNotFound = errors.New("block not found")

	// ErrInvalidHours возвращается при нарушении инвариантов часов работы
	ErrInvalidHours = errors.New("invalid weekday hours")

	// ErrInvalidBlock возвращается при нарушении инвариантов блокировки
	ErrInvalidBlock = errors.New("invalid block")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
