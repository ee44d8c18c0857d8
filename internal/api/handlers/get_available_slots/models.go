package get_available_slots

import (
	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
	getAvailableSlots "github.com/mtrevino/BarberPro-SchedulingService/internal/usecase/get_available_slots"
)

// SlotResponse кандидат времени начала с признаком доступности
type SlotResponse struct {
	StartTime string `json:"startTime"` // "10:00"
	Available bool   `json:"available"`
}

// GetAvailableSlotsResponse HTTP response model
type GetAvailableSlotsResponse struct {
	Date            string          `json:"date"` // "2026-09-15"
	BranchID        int64           `json:"branchId"`
	BarberID        int64           `json:"barberId"`
	ServiceID       int64           `json:"serviceId"`
	DurationMinutes int             `json:"durationMinutes"`
	Slots           []*SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *GetAvailableSlotsResponse {
	slots := make([]*SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, &SlotResponse{
			StartTime: s.StartTime.String(),
			Available: s.Available,
		})
	}
	return &GetAvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		BranchID:        resp.BranchID,
		BarberID:        resp.BarberID,
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
