package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/infra/lock"
	appointmentRepo "github.com/mtrevino/BarberPro-SchedulingService/internal/infra/storage/appointment"
	scheduleRepo "github.com/mtrevino/BarberPro-SchedulingService/internal/infra/storage/schedule"
)

// UseCase use case для переноса записи на другие дату и время
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	blockRepo       BlockRepository
	txManager       TransactionManager
	locker          SlotLocker
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	blockRepo BlockRepository,
	txManager TransactionManager,
	locker SlotLocker,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		blockRepo:       blockRepo,
		txManager:       txManager,
		locker:          locker,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет use case переноса записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: id=%d, newDate=%s, newTime=%s",
		req.AppointmentID, req.NewDate.Format(domain.DateFormat), req.NewStartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Перенос на прошедшую дату отклоняется
	if domain.DateInPast(req.NewDate, now) {
		uc.logger.Warn("RescheduleAppointment: date %s is in the past", req.NewDate.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	startMinutes, err := req.NewStartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid newStartTime: %v", ErrInvalidInput, err)
	}

	// 4. Читаем запись вне транзакции, чтобы ключ блокировки считался от
	// нового слота и барбера записи
	current, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	var result *domain.Appointment

	// 5. Критическая секция: блокировка нового слота + сериализуемая транзакция
	err = uc.locker.WithSlotLock(ctx, current.BarberID, req.NewDate, req.NewStartTime, func(lockCtx context.Context) error {
		return uc.txManager.DoSerializable(lockCtx, func(txCtx context.Context) error {
			// 5.1. Перечитываем запись с блокировкой строки
			appt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
			if err != nil {
				if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
					return ErrAppointmentNotFound
				}
				return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
			}

			if !appt.CanBeRescheduled() {
				uc.logger.Warn("RescheduleAppointment: id=%d has status %s", appt.ID, appt.Status)
				return ErrNotReschedulable
			}

			// 5.2. Часы работы филиала на новую дату
			hours, err := uc.scheduleRepo.GetByBranchAndWeekday(txCtx, appt.BranchID, req.NewDate.Weekday())
			if err != nil {
				if errors.Is(err, scheduleRepo.ErrHoursNotFound) {
					return ErrBranchClosed
				}
				return fmt.Errorf("%w: failed to get weekday hours: %v", ErrInternal, err)
			}
			if !hours.IsOpen {
				return ErrBranchClosed
			}

			// 5.3. Блокировки и записи барбера на новую дату
			blocks, err := uc.blockRepo.GetActiveFor(txCtx, appt.BarberID, req.NewDate)
			if err != nil {
				return fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
			}

			appointments, err := uc.appointmentRepo.GetByBarberAndDate(txCtx, appt.BarberID, req.NewDate, false)
			if err != nil {
				return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
			}

			// 5.4. Проверяем новый слот, исключая собственный интервал записи
			if err := validateSlot(hours, blocks, appointments, req.NewDate, startMinutes, appt.DurationMinutes, now, &appt.ID); err != nil {
				uc.logger.Warn("RescheduleAppointment: slot validation failed: %v", err)
				return err
			}

			// 5.5. Обновляем дату и время записи
			if err := uc.appointmentRepo.Reschedule(txCtx, appt.ID, req.NewDate, req.NewStartTime); err != nil {
				return fmt.Errorf("%w: failed to reschedule appointment: %v", ErrInternal, err)
			}

			appt.AppointmentDate = req.NewDate
			appt.StartTime = req.NewStartTime
			result = appt
			return nil
		})
	})

	if err != nil {
		if errors.Is(err, lock.ErrLockNotAcquired) {
			uc.logger.Warn("RescheduleAppointment: slot lock busy for barber=%d, date=%s, time=%s",
				current.BarberID, req.NewDate.Format(domain.DateFormat), req.NewStartTime)
			return nil, ErrSlotBusy
		}
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: successfully rescheduled appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		BranchID:        result.BranchID,
		BarberID:        result.BarberID,
		ServiceID:       result.ServiceID,
		AppointmentDate: result.AppointmentDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
