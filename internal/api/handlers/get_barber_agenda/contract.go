package get_barber_agenda

import (
	"context"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetBarberAgenda(ctx context.Context, req *models.GetBarberAgendaRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
