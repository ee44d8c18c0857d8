package get_available_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInvalidDuration возвращается при нулевой или отрицательной длительности услуги
	ErrInvalidDuration = errors.New("get_available_slots: invalid duration")

	// ErrInvalidGranularity возвращается при некорректном шаге сетки слотов
	ErrInvalidGranularity = errors.New("get_available_slots: invalid granularity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
