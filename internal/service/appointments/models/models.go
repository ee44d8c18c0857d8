package models

import (
	"time"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
)

// Request модели

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	UserID             int64   `json:"userId"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ConfirmAppointmentRequest запрос на подтверждение записи барбером
type ConfirmAppointmentRequest struct {
	UserID int64 `json:"userId"`
}

// GetBarberAgendaRequest запрос на получение расписания барбера
type GetBarberAgendaRequest struct {
	UserID          int64      `json:"userId"`
	BarberID        int64      `json:"barberId"`
	BranchID        *int64     `json:"branchId,omitempty"`        // Фильтр по филиалу (опционально)
	Date            *time.Time `json:"date,omitempty"`            // Конкретная дата (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отмененные записи
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBarberAgendaRequest) ToDomainFilter() domain.BarberAgendaFilter {
	return domain.BarberAgendaFilter{
		BarberID:        r.BarberID,
		BranchID:        r.BranchID,
		Date:            r.Date,
		IncludeInactive: r.IncludeInactive,
	}
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	ClientID        int64  `json:"clientId"`
	BranchID        int64  `json:"branchId"`
	BarberID        int64  `json:"barberId"`
	ServiceID       int64  `json:"serviceId"`
	AppointmentDate string `json:"appointmentDate"` // "2026-09-15"
	StartTime       string `json:"startTime"`       // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	// Денормализованные данные
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	Notes        *string `json:"notes,omitempty"`

	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 appt.ID,
		ClientID:           appt.ClientID,
		BranchID:           appt.BranchID,
		BarberID:           appt.BarberID,
		ServiceID:          appt.ServiceID,
		AppointmentDate:    appt.AppointmentDate.Format(domain.DateFormat),
		StartTime:          appt.StartTime.String(),
		DurationMinutes:    appt.DurationMinutes,
		Status:             string(appt.Status),
		ServiceName:        appt.ServiceName,
		ServicePrice:       appt.ServicePrice,
		Notes:              appt.Notes,
		CancellationReason: appt.CancellationReason,
		CancelledAt:        appt.CancelledAt,
		CreatedAt:          appt.CreatedAt,
		UpdatedAt:          appt.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в response
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	responses := make([]*AppointmentResponse, 0, len(appts))
	for _, appt := range appts {
		responses = append(responses, FromDomainAppointment(appt))
	}
	return &AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}
}
