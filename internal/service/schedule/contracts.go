package schedule

import (
	"context"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания филиалов
type ScheduleRepository interface {
	GetByBranch(ctx context.Context, branchID int64) (*domain.BranchSchedule, error)
	Upsert(ctx context.Context, hours *domain.WeekdayHours) (*domain.WeekdayHours, error)
}

// BlockRepository интерфейс репозитория блокировок барберов
type BlockRepository interface {
	Create(ctx context.Context, blk *domain.Block) (*domain.Block, error)
	ListByBarber(ctx context.Context, barberID int64) ([]*domain.Block, error)
	Delete(ctx context.Context, id int64, barberID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
