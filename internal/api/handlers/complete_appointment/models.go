package complete_appointment

import (
	"time"

	completeAppointment "github.com/mtrevino/BarberPro-SchedulingService/internal/usecase/complete_appointment"
)

// CompleteAppointmentRequest HTTP request model
type CompleteAppointmentRequest struct {
	PaymentMethod string `json:"paymentMethod"` // cash, card, transfer
}

// CompleteAppointmentResponse HTTP response model
type CompleteAppointmentResponse struct {
	AppointmentID    int64   `json:"appointmentId"`
	Status           string  `json:"status"`
	AlreadyCompleted bool    `json:"alreadyCompleted"`
	LedgerEntryID    int64   `json:"ledgerEntryId"`
	Amount           float64 `json:"amount"`
	PaymentMethod    string  `json:"paymentMethod"`
	RecordedAt       string  `json:"recordedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *completeAppointment.Response) *CompleteAppointmentResponse {
	return &CompleteAppointmentResponse{
		AppointmentID:    resp.AppointmentID,
		Status:           resp.Status,
		AlreadyCompleted: resp.AlreadyCompleted,
		LedgerEntryID:    resp.LedgerEntryID,
		Amount:           resp.Amount,
		PaymentMethod:    resp.PaymentMethod,
		RecordedAt:       resp.RecordedAt.Format(time.RFC3339),
	}
}
