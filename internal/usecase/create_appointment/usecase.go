package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/infra/lock"
	scheduleRepo "github.com/mtrevino/BarberPro-SchedulingService/internal/infra/storage/schedule"
	catalogClient "github.com/mtrevino/BarberPro-SchedulingService/internal/integrations/catalogservice"
)

// UseCase use case для создания записи к барберу
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	blockRepo       BlockRepository
	catalogClient   CatalogServiceClient
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
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	locker SlotLocker,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		blockRepo:       blockRepo,
		catalogClient:   catalogClient,
		txManager:       txManager,
		locker:          locker,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Проверка конфликта и вставка выполняются в сериализуемой транзакции под
// блокировкой слота: две конкурирующие брони одного слота не могут обе
// пройти валидацию
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, branch=%d, barber=%d, service=%d, date=%s, time=%s",
		req.ClientID, req.BranchID, req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Запись на прошедшую дату отклоняется независимо от занятости
	if domain.DateInPast(req.Date, now) {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	// 4. Получаем услугу из каталога
	service, err := uc.catalogClient.GetService(ctx, req.BranchID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) || errors.Is(err, catalogClient.ErrServiceInactive) {
			uc.logger.Warn("CreateAppointment: service id=%d not available: %v", req.ServiceID, err)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if service.DurationMinutes <= 0 || service.DurationMinutes > domain.MaxDurationMinutes {
		uc.logger.Warn("CreateAppointment: service id=%d has invalid duration %d",
			req.ServiceID, service.DurationMinutes)
		return nil, fmt.Errorf("%w: duration %d", ErrInvalidDuration, service.DurationMinutes)
	}

	startMinutes, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	var result *domain.Appointment

	// 5. Критическая секция: блокировка слота + сериализуемая транзакция
	err = uc.locker.WithSlotLock(ctx, req.BarberID, req.Date, req.StartTime, func(lockCtx context.Context) error {
		return uc.txManager.DoSerializable(lockCtx, func(txCtx context.Context) error {
			// 5.1. Часы работы филиала; отсутствие расписания = закрыто
			hours, err := uc.scheduleRepo.GetByBranchAndWeekday(txCtx, req.BranchID, req.Date.Weekday())
			if err != nil {
				if errors.Is(err, scheduleRepo.ErrHoursNotFound) {
					return ErrBranchClosed
				}
				return fmt.Errorf("%w: failed to get weekday hours: %v", ErrInternal, err)
			}
			if !hours.IsOpen {
				return ErrBranchClosed
			}

			// 5.2. Блокировки барбера на дату
			blocks, err := uc.blockRepo.GetActiveFor(txCtx, req.BarberID, req.Date)
			if err != nil {
				return fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
			}

			// 5.3. Существующие записи с блокировкой строк (FOR UPDATE)
			appointments, err := uc.appointmentRepo.GetByBarberAndDate(txCtx, req.BarberID, req.Date, false)
			if err != nil {
				return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
			}

			// 5.4. Проверяем слот той же семантикой, что и расчет доступности
			if err := validateSlot(hours, blocks, appointments, req.Date, startMinutes, service.DurationMinutes, now, nil); err != nil {
				uc.logger.Warn("CreateAppointment: slot validation failed: %v", err)
				return err
			}

			// 5.5. Создаем запись с денормализацией данных услуги
			appt := &domain.Appointment{
				ClientID:        req.ClientID,
				BranchID:        req.BranchID,
				BarberID:        req.BarberID,
				ServiceID:       req.ServiceID,
				AppointmentDate: req.Date,
				StartTime:       req.StartTime,
				DurationMinutes: service.DurationMinutes,
				Status:          domain.StatusPending,
				ServiceName:     service.Name,
				ServicePrice:    service.Price,
				Notes:           req.Notes,
			}

			created, err := uc.appointmentRepo.Create(txCtx, appt)
			if err != nil {
				return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
			}

			result = created
			return nil
		})
	})

	if err != nil {
		if errors.Is(err, lock.ErrLockNotAcquired) {
			uc.logger.Warn("CreateAppointment: slot lock busy for barber=%d, date=%s, time=%s",
				req.BarberID, req.Date.Format(domain.DateFormat), req.StartTime)
			return nil, ErrSlotBusy
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

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
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
