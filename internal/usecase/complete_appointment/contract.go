package complete_appointment

import (
	"context"
	"time"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ClaimCompletion(ctx context.Context, id int64) (bool, error)
	SetLedgerEntry(ctx context.Context, id int64, ledgerEntryID int64) error
}

// LedgerRepository интерфейс репозитория кассовых операций
type LedgerRepository interface {
	Create(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	GetByAppointmentID(ctx context.Context, appointmentID int64) (*domain.LedgerEntry, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
