package complete_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("complete_appointment: appointment not found")

	// ErrInvalidTransition возвращается, когда статус записи не допускает
	// завершение (завершить можно только подтвержденную запись)
	ErrInvalidTransition = errors.New("complete_appointment: appointment cannot be completed in its current status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("complete_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("complete_appointment: internal error")
)
