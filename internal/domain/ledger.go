package domain

import "time"

// PaymentMethod способ оплаты, фиксируемый в кассе
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

// ValidPaymentMethod returns true if the given value is a known payment method
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

// LedgerEntry is a cash register record created when an appointment
// completes. Exactly one entry may ever exist per appointment; the
// appointment's RegisteredInLedger flag guards the insertion.
type LedgerEntry struct {
	ID            int64
	AppointmentID int64
	BranchID      int64
	BarberID      int64
	Amount        float64
	PaymentMethod PaymentMethod
	RecordedAt    time.Time
}
