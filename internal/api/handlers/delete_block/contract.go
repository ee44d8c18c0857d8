package delete_block

import "context"

type ScheduleService interface {
	DeleteBlock(ctx context.Context, blockID int64, barberID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
