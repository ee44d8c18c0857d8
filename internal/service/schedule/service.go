package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
	blockRepo "github.com/mtrevino/BarberPro-SchedulingService/internal/infra/storage/block"
	"github.com/mtrevino/BarberPro-SchedulingService/internal/service/schedule/models"
)

// Service сервис для управления расписанием филиалов и блокировками барберов
type Service struct {
	scheduleRepo ScheduleRepository
	blockRepo    BlockRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	blockRepo BlockRepository,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		blockRepo:    blockRepo,
		logger:       logger,
	}
}

// GetBranchSchedule получает недельное расписание филиала
// Дни без записи отдаются закрытыми: отсутствие расписания означает,
// что филиал в этот день не работает
func (s *Service) GetBranchSchedule(ctx context.Context, branchID int64) (*models.BranchScheduleResponse, error) {
	s.logger.Info("GetBranchSchedule: fetching schedule for branch=%d", branchID)

	if branchID <= 0 {
		return nil, fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}

	sched, err := s.scheduleRepo.GetByBranch(ctx, branchID)
	if err != nil {
		s.logger.Error("GetBranchSchedule: repository error for branch=%d: %v", branchID, err)
		return nil, fmt.Errorf("%w: GetBranchSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBranchSchedule: successfully fetched schedule for branch=%d", branchID)
	return models.FromDomainBranchSchedule(sched), nil
}

// UpdateWeekdayHours создает или обновляет часы работы филиала на день недели
// Инварианты проверяются до записи: открытие строго раньше закрытия,
// обеденное окно целиком внутри рабочего дня
func (s *Service) UpdateWeekdayHours(ctx context.Context, req *models.UpdateWeekdayHoursRequest) (*models.WeekdayHoursResponse, error) {
	s.logger.Info("UpdateWeekdayHours: branch=%d, weekday=%d, isOpen=%v", req.BranchID, req.Weekday, req.IsOpen)

	if req.BranchID <= 0 {
		return nil, fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}

	hours, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("UpdateWeekdayHours: validation failed for branch=%d: %v", req.BranchID, err)
		if errors.Is(err, domain.ErrInvalidWeekdayHours) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidHours, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.scheduleRepo.Upsert(ctx, hours)
	if err != nil {
		s.logger.Error("UpdateWeekdayHours: repository error for branch=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: UpdateWeekdayHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWeekdayHours: successfully saved hours for branch=%d, weekday=%d", req.BranchID, req.Weekday)
	return models.FromDomainWeekdayHours(saved), nil
}

// CreateBlock создает блокировку барбера
// Блокировку создает только сам барбер
func (s *Service) CreateBlock(ctx context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("CreateBlock: barber=%d, branch=%d, kind=%s by user=%d", req.BarberID, req.BranchID, req.Kind, req.UserID)

	if req.BarberID <= 0 || req.BranchID <= 0 {
		return nil, fmt.Errorf("%w: barberID and branchID must be positive", ErrInvalidInput)
	}

	if req.UserID != req.BarberID {
		s.logger.Warn("CreateBlock: user=%d is not barber=%d", req.UserID, req.BarberID)
		return nil, fmt.Errorf("%w: only the barber can manage own blocks", ErrInvalidInput)
	}

	blk, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("CreateBlock: validation failed for barber=%d: %v", req.BarberID, err)
		if errors.Is(err, domain.ErrInvalidBlock) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBlock, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.blockRepo.Create(ctx, blk)
	if err != nil {
		s.logger.Error("CreateBlock: repository error for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: CreateBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlock: successfully created block id=%d for barber=%d", created.ID, req.BarberID)
	return models.FromDomainBlock(created), nil
}

// ListBlocks получает все блокировки барбера
func (s *Service) ListBlocks(ctx context.Context, barberID int64) (*models.BlockListResponse, error) {
	s.logger.Info("ListBlocks: fetching blocks for barber=%d", barberID)

	if barberID <= 0 {
		return nil, fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	blocks, err := s.blockRepo.ListByBarber(ctx, barberID)
	if err != nil {
		s.logger.Error("ListBlocks: repository error for barber=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: ListBlocks - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBlocks: successfully fetched %d blocks for barber=%d", len(blocks), barberID)
	return models.FromDomainBlockList(blocks), nil
}

// DeleteBlock удаляет блокировку барбера
// Удалить блокировку может только ее барбер
func (s *Service) DeleteBlock(ctx context.Context, blockID int64, barberID int64) error {
	s.logger.Info("DeleteBlock: deleting block id=%d for barber=%d", blockID, barberID)

	if blockID <= 0 || barberID <= 0 {
		return fmt.Errorf("%w: blockID and barberID must be positive", ErrInvalidInput)
	}

	if err := s.blockRepo.Delete(ctx, blockID, barberID); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("DeleteBlock: block id=%d not found for barber=%d", blockID, barberID)
			return ErrBlockNotFound
		}
		s.logger.Error("DeleteBlock: repository error for block id=%d: %v", blockID, err)
		return fmt.Errorf("%w: DeleteBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlock: successfully deleted block id=%d", blockID)
	return nil
}
