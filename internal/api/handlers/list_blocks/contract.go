package list_blocks

import (
	"context"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListBlocks(ctx context.Context, barberID int64) (*models.BlockListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
