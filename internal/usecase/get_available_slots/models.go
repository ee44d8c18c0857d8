package get_available_slots

import (
	"time"

	"github.com/mtrevino/BarberPro-SchedulingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BranchID  int64     // ID филиала
	BarberID  int64     // ID барбера
	ServiceID int64     // ID услуги (определяет длительность)
	Date      time.Time // Дата для расчета слотов (без времени)
	// Шаг сетки слотов в минутах; 0 = значение по умолчанию из конфига
	GranularityMinutes int
}

// Response модель ответа со списком слотов
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	BranchID        int64     // ID филиала
	BarberID        int64     // ID барбера
	ServiceID       int64     // ID услуги
	DurationMinutes int       // Длительность услуги
	Slots           []Slot    // Все кандидаты сетки с признаком доступности
}

// Slot кандидат времени начала с признаком доступности
type Slot struct {
	StartTime types.TimeString // Время начала (например, "10:00")
	Available bool             // Свободен ли интервал [start, start+duration)
}
