package create_appointment

import (
	"context"
	"time"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/integrations/catalogservice"
	"github.com/mtrevino/BarberPro-SchedulingService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByBarberAndDate(ctx context.Context, barberID int64, date time.Time, includeInactive bool) ([]*domain.Appointment, error)
}

// ScheduleRepository интерфейс репозитория расписания филиалов
type ScheduleRepository interface {
	GetByBranchAndWeekday(ctx context.Context, branchID int64, weekday time.Weekday) (*domain.WeekdayHours, error)
}

// BlockRepository интерфейс репозитория блокировок барберов
type BlockRepository interface {
	GetActiveFor(ctx context.Context, barberID int64, date time.Time) ([]*domain.Block, error)
}

// CatalogServiceClient интерфейс клиента каталога услуг
type CatalogServiceClient interface {
	GetService(ctx context.Context, branchID, serviceID int64) (*catalogservice.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotLocker сериализует конкурентные брони одного слота
type SlotLocker interface {
	WithSlotLock(ctx context.Context, barberID int64, date time.Time, startTime types.TimeString, fn func(ctx context.Context) error) error
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
