package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
	appointmentRepo "github.com/mtrevino/BarberPro-SchedulingService/internal/infra/storage/appointment"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/service/appointments/models"
)

// Service сервис для работы с записями к барберам
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Запись видят только ее клиент и ее барбер
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(appt, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// GetBarberAgenda получает записи барбера с фильтрацией по филиалу и дате
// Доступно только самому барберу
//
// Примеры использования:
// - Все активные записи: GetBarberAgenda(ctx, &GetBarberAgendaRequest{BarberID: 7, UserID: 7})
// - Записи на дату: указать Date
// - Включая отмененные: IncludeInactive = true
func (s *Service) GetBarberAgenda(ctx context.Context, req *models.GetBarberAgendaRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetBarberAgenda: fetching appointments for barber=%d, user=%d", req.BarberID, req.UserID)

	if req.BarberID <= 0 {
		return nil, fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if req.UserID != req.BarberID {
		s.logger.Warn("GetBarberAgenda: user=%d is not barber=%d", req.UserID, req.BarberID)
		return nil, ErrAccessDenied
	}

	appts, err := s.appointmentRepo.GetWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("GetBarberAgenda: repository error for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: GetBarberAgenda - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBarberAgenda: successfully fetched %d appointments for barber=%d", len(appts), req.BarberID)
	return models.FromDomainAppointmentList(appts), nil
}

// Cancel отменяет запись
// Отменить может клиент записи или ее барбер; отмена из терминального
// статуса отклоняется. Отмененная запись сразу освобождает слот
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d", appointmentID, req.UserID)

	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(appt, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to appointment id=%d", req.UserID, appointmentID)
		return err
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appt.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, appointmentID, req.CancellationReason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", appointmentID)
	return nil
}

// Confirm подтверждает запись барбером
// Допустим только переход pending -> confirmed
func (s *Service) Confirm(ctx context.Context, appointmentID int64, req *models.ConfirmAppointmentRequest) error {
	s.logger.Info("Confirm: confirming appointment id=%d by user=%d", appointmentID, req.UserID)

	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Confirm: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Confirm: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	// Подтверждает только барбер записи
	if appt.BarberID != req.UserID {
		s.logger.Warn("Confirm: access denied for user=%d to appointment id=%d", req.UserID, appointmentID)
		return ErrAccessDenied
	}

	if !appt.CanTransitionTo(domain.StatusConfirmed) {
		s.logger.Warn("Confirm: invalid transition for appointment id=%d from status=%s", appointmentID, appt.Status)
		return ErrInvalidTransition
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, domain.StatusConfirmed); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Confirm: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Confirm: successfully confirmed appointment id=%d", appointmentID)
	return nil
}

// checkUserAccess проверяет, что пользователь имеет доступ к записи
// Доступ есть у клиента записи и у ее барбера
func (s *Service) checkUserAccess(appt *domain.Appointment, userID int64) error {
	if appt.ClientID == userID || appt.BarberID == userID {
		return nil
	}
	return ErrAccessDenied
}
