package complete_appointment

import "time"

// Request модель запроса на завершение записи
type Request struct {
	AppointmentID int64  // ID завершаемой записи
	PaymentMethod string // Способ оплаты: cash, card, transfer
}

// Response модель ответа с завершенной записью и кассовой операцией
type Response struct {
	AppointmentID    int64     // ID записи
	Status           string    // Итоговый статус (completed)
	AlreadyCompleted bool      // true, если запись была завершена ранее
	LedgerEntryID    int64     // ID кассовой операции
	Amount           float64   // Сумма операции
	PaymentMethod    string    // Способ оплаты
	RecordedAt       time.Time // Время проведения операции
}
