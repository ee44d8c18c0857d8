package get_available_slots

import (
	"fmt"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
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

	if req.GranularityMinutes < 0 ||
		(req.GranularityMinutes > 0 && req.GranularityMinutes < domain.MinGranularityMinutes) ||
		req.GranularityMinutes > domain.MaxGranularityMinutes {
		return fmt.Errorf("%w: granularity %d out of range", ErrInvalidGranularity, req.GranularityMinutes)
	}

	return nil
}

// validateDuration проверяет длительность услуги из каталога
// Нулевая или отрицательная длительность - ошибка данных каталога
func validateDuration(durationMinutes int) error {
	if durationMinutes <= 0 {
		return fmt.Errorf("%w: duration %d must be positive", ErrInvalidDuration, durationMinutes)
	}
	if durationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration %d exceeds maximum %d", ErrInvalidDuration, durationMinutes, domain.MaxDurationMinutes)
	}
	return nil
}
