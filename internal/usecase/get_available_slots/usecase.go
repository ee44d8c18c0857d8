package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
	scheduleRepo "github.com/mtrevino/BarberPro-SchedulingService/internal/infra/storage/schedule"
	catalogClient "github.com/mtrevino/BarberPro-SchedulingService/internal/integrations/catalogservice"
)

// UseCase use case для получения доступных слотов записи к барберу
type UseCase struct {
	scheduleRepo       ScheduleRepository
	blockRepo          BlockRepository
	appointmentRepo    AppointmentRepository
	catalogClient      CatalogServiceClient
	timeProvider       TimeProvider
	defaultGranularity int
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	blockRepo BlockRepository,
	appointmentRepo AppointmentRepository,
	catalogClient CatalogServiceClient,
	timeProvider TimeProvider,
	defaultGranularity int,
	logger Logger,
) *UseCase {
	if defaultGranularity <= 0 {
		defaultGranularity = domain.DefaultGranularityMinutes
	}
	return &UseCase{
		scheduleRepo:       scheduleRepo,
		blockRepo:          blockRepo,
		appointmentRepo:    appointmentRepo,
		catalogClient:      catalogClient,
		timeProvider:       timeProvider,
		defaultGranularity: defaultGranularity,
		logger:             logger,
	}
}

// Execute выполняет расчет слотов для (барбер, филиал, дата)
// Пустой список слотов - валидный ответ (выходной, прошедшая дата,
// полный день занят), а не ошибка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: branch=%d, barber=%d, service=%d, date=%s",
		req.BranchID, req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	granularity := req.GranularityMinutes
	if granularity == 0 {
		granularity = uc.defaultGranularity
	}

	// 2. Получаем текущее время в настроенной зоне
	now := uc.timeProvider.Now()

	// 3. Получаем услугу из каталога (определяет длительность)
	service, err := uc.catalogClient.GetService(ctx, req.BranchID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) || errors.Is(err, catalogClient.ErrServiceInactive) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not available: %v", req.ServiceID, err)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if err := validateDuration(service.DurationMinutes); err != nil {
		uc.logger.Warn("GetAvailableSlots: duration validation failed: %v", err)
		return nil, err
	}

	response := &Response{
		Date:            req.Date,
		BranchID:        req.BranchID,
		BarberID:        req.BarberID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           []Slot{},
	}

	// 4. Прошедшая дата недоступна для записи целиком
	if domain.DateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return response, nil
	}

	// 5. Получаем часы работы филиала на день недели
	// Отсутствие расписания трактуем как закрытый день (fail closed)
	hours, err := uc.scheduleRepo.GetByBranchAndWeekday(ctx, req.BranchID, req.Date.Weekday())
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrHoursNotFound) {
			uc.logger.Info("GetAvailableSlots: no hours for branch=%d weekday=%d, treating as closed",
				req.BranchID, req.Date.Weekday())
			return response, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get weekday hours: %v", ErrInternal, err)
	}

	if !hours.IsOpen {
		uc.logger.Info("GetAvailableSlots: branch=%d is closed on %s",
			req.BranchID, req.Date.Format(domain.DateFormat))
		return response, nil
	}

	span, err := hours.Span()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid business hours for branch=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: invalid business hours: %v", ErrInternal, err)
	}

	// 6. Собираем блокировки барбера на дату
	blocks, err := uc.blockRepo.GetActiveFor(ctx, req.BarberID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
	}

	// Закрытие на весь день равносильно выходному: слотов нет
	if domain.HasFullDayClosure(blocks, req.Date) {
		uc.logger.Info("GetAvailableSlots: barber=%d has a full day closure on %s",
			req.BarberID, req.Date.Format(domain.DateFormat))
		return response, nil
	}

	// 7. Собираем существующие записи барбера на дату
	// Отмененные записи не удерживают интервал и не запрашиваются
	appointments, err := uc.appointmentRepo.GetByBarberAndDate(ctx, req.BarberID, req.Date, false)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 8. Полная занятость = обед + блокировки + записи
	occupancy, err := domain.BuildOccupancy(hours, blocks, appointments, req.Date, nil)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to build occupancy: %v", err)
		return nil, fmt.Errorf("%w: failed to build occupancy: %v", ErrInternal, err)
	}

	// 9. Генерируем кандидатов и оцениваем доступность каждого
	candidates := generateCandidates(span, granularity, service.DurationMinutes)
	slots, err := evaluateSlots(candidates, service.DurationMinutes, occupancy, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to evaluate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to evaluate slots: %v", ErrInternal, err)
	}

	response.Slots = slots

	uc.logger.Info("GetAvailableSlots: generated %d candidates for barber=%d, date=%s",
		len(slots), req.BarberID, req.Date.Format(domain.DateFormat))

	return response, nil
}
