package reschedule_appointment

import (
	"time"

	"github.com/mtrevino/BarberPro-SchedulingService/pkg/types"
)

// Request модель запроса на перенос записи
type Request struct {
	AppointmentID int64            // ID переносимой записи
	NewDate       time.Time        // Новая дата записи
	NewStartTime  types.TimeString // Новое время начала
}

// Response модель ответа с перенесенной записью
type Response struct {
	ID              int64            // ID записи
	ClientID        int64            // ID клиента
	BranchID        int64            // ID филиала
	BarberID        int64            // ID барбера
	ServiceID       int64            // ID услуги
	AppointmentDate time.Time        // Новая дата записи
	StartTime       types.TimeString // Новое время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус записи
	ServiceName     string           // Название услуги
	ServicePrice    float64          // Цена услуги
	UpdatedAt       time.Time        // Время обновления
}
