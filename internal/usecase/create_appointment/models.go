package create_appointment

import (
	"time"

	"github.com/mtrevino/BarberPro-SchedulingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID  int64            // ID клиента
	BranchID  int64            // ID филиала
	BarberID  int64            // ID барбера
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата записи (без времени)
	StartTime types.TimeString // Время начала (например, "10:00")
	Notes     *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	ClientID        int64            // ID клиента
	BranchID        int64            // ID филиала
	BarberID        int64            // ID барбера
	ServiceID       int64            // ID услуги
	AppointmentDate time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус записи

	// Денормализованные данные услуги
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
