package update_branch_schedule

import (
	"context"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetBranchSchedule(ctx context.Context, branchID int64) (*models.BranchScheduleResponse, error)
	UpdateWeekdayHours(ctx context.Context, req *models.UpdateWeekdayHoursRequest) (*models.WeekdayHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
