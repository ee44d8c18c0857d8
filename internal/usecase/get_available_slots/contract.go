package get_available_slots

import (
	"context"
	"time"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/integrations/catalogservice"
)

// ScheduleRepository интерфейс репозитория расписания филиалов
type ScheduleRepository interface {
	// GetByBranchAndWeekday получает часы работы филиала на день недели
	GetByBranchAndWeekday(ctx context.Context, branchID int64, weekday time.Weekday) (*domain.WeekdayHours, error)
}

// BlockRepository интерфейс репозитория блокировок барберов
type BlockRepository interface {
	// GetActiveFor получает блокировки барбера, потенциально действующие на дату
	GetActiveFor(ctx context.Context, barberID int64, date time.Time) ([]*domain.Block, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByBarberAndDate получает записи барбера на конкретную дату
	GetByBarberAndDate(ctx context.Context, barberID int64, date time.Time, includeInactive bool) ([]*domain.Appointment, error)
}

// CatalogServiceClient интерфейс клиента каталога услуг
type CatalogServiceClient interface {
	GetService(ctx context.Context, branchID, serviceID int64) (*catalogservice.Service, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider провайдер времени в настроенной локальной зоне процесса
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время в локальной зоне сервиса
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().In(p.Location)
}
