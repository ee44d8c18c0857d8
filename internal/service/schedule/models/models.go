package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
	"github.com/mtrevino/BarberPro-SchedulingService/pkg/ptr"
	"github.com/mtrevino/BarberPro-SchedulingService/pkg/types"
)

var (
	// ErrInvalidWeekday возвращается при некорректном дне недели
	ErrInvalidWeekday = errors.New("invalid weekday")

	// ErrInvalidBlockKind возвращается при неизвестном типе блокировки
	ErrInvalidBlockKind = errors.New("invalid block kind")
)

// Request модели

// UpdateWeekdayHoursRequest запрос на обновление часов работы филиала
// на день недели (0 = воскресенье ... 6 = суббота)
type UpdateWeekdayHoursRequest struct {
	BranchID   int64   `json:"branchId"`
	Weekday    int     `json:"weekday"`
	IsOpen     bool    `json:"isOpen"`
	OpensAt    string  `json:"opensAt"`              // "09:00"
	ClosesAt   string  `json:"closesAt"`             // "19:00"
	LunchStart *string `json:"lunchStart,omitempty"` // "13:00"
	LunchEnd   *string `json:"lunchEnd,omitempty"`   // "14:00"
}

// ToDomain конвертирует request в domain модель с проверкой инвариантов
func (r *UpdateWeekdayHoursRequest) ToDomain() (*domain.WeekdayHours, error) {
	if r.Weekday < 0 || r.Weekday > 6 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWeekday, r.Weekday)
	}

	hours := &domain.WeekdayHours{
		BranchID: r.BranchID,
		Weekday:  time.Weekday(r.Weekday),
		IsOpen:   r.IsOpen,
		OpensAt:  types.TimeString(r.OpensAt),
		ClosesAt: types.TimeString(r.ClosesAt),
	}

	if r.LunchStart != nil {
		hours.LunchStart = ptr.Ptr(types.TimeString(*r.LunchStart))
	}
	if r.LunchEnd != nil {
		hours.LunchEnd = ptr.Ptr(types.TimeString(*r.LunchEnd))
	}

	if hours.IsOpen {
		if err := hours.Validate(); err != nil {
			return nil, err
		}
	}

	return hours, nil
}

// CreateBlockRequest запрос на создание блокировки барбера
type CreateBlockRequest struct {
	UserID    int64   `json:"userId"`
	BarberID  int64   `json:"barberId"`
	BranchID  int64   `json:"branchId"`
	Kind      string  `json:"kind"`                // short_break, partial_block, full_day_closure
	Date      *string `json:"date,omitempty"`      // "2026-09-15" для одноразовых блокировок
	Weekdays  []int   `json:"weekdays,omitempty"`  // дни недели для short_break
	StartTime *string `json:"startTime,omitempty"` // "13:00"
	EndTime   *string `json:"endTime,omitempty"`   // "13:30"
	Reason    *string `json:"reason,omitempty"`
}

// ToDomain конвертирует request в domain модель с проверкой инвариантов
func (r *CreateBlockRequest) ToDomain() (*domain.Block, error) {
	kind := domain.BlockKind(r.Kind)
	switch kind {
	case domain.BlockShortBreak, domain.BlockPartial, domain.BlockFullDay:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidBlockKind, r.Kind)
	}

	blk := &domain.Block{
		BarberID: r.BarberID,
		BranchID: r.BranchID,
		Kind:     kind,
		Reason:   r.Reason,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", *r.Date, err)
		}
		blk.Date = &date
	}

	if len(r.Weekdays) > 0 {
		days := make([]time.Weekday, 0, len(r.Weekdays))
		for _, d := range r.Weekdays {
			if d < 0 || d > 6 {
				return nil, fmt.Errorf("%w: %d", ErrInvalidWeekday, d)
			}
			days = append(days, time.Weekday(d))
		}
		blk.Weekdays = domain.NewWeekdaySet(days...)
	}

	if r.StartTime != nil {
		blk.StartTime = ptr.Ptr(types.TimeString(*r.StartTime))
	}
	if r.EndTime != nil {
		blk.EndTime = ptr.Ptr(types.TimeString(*r.EndTime))
	}

	if err := blk.Validate(); err != nil {
		return nil, err
	}

	return blk, nil
}

// Response модели

// WeekdayHoursResponse часы работы филиала на один день недели
type WeekdayHoursResponse struct {
	Weekday    int     `json:"weekday"`
	IsOpen     bool    `json:"isOpen"`
	OpensAt    string  `json:"opensAt,omitempty"`
	ClosesAt   string  `json:"closesAt,omitempty"`
	LunchStart *string `json:"lunchStart,omitempty"`
	LunchEnd   *string `json:"lunchEnd,omitempty"`
}

// BranchScheduleResponse недельное расписание филиала
// Дни без записи отдаются закрытыми
type BranchScheduleResponse struct {
	BranchID int64                   `json:"branchId"`
	Days     []*WeekdayHoursResponse `json:"days"`
}

// BlockResponse ответ с данными блокировки
type BlockResponse struct {
	ID        int64   `json:"id"`
	BarberID  int64   `json:"barberId"`
	BranchID  int64   `json:"branchId"`
	Kind      string  `json:"kind"`
	Date      *string `json:"date,omitempty"`
	Weekdays  []int   `json:"weekdays,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

// BlockListResponse ответ со списком блокировок
type BlockListResponse struct {
	Blocks []*BlockResponse `json:"blocks"`
	Total  int              `json:"total"`
}

// FromDomainWeekdayHours конвертирует domain модель в response
func FromDomainWeekdayHours(h *domain.WeekdayHours) *WeekdayHoursResponse {
	resp := &WeekdayHoursResponse{
		Weekday: int(h.Weekday),
		IsOpen:  h.IsOpen,
	}
	if h.IsOpen {
		resp.OpensAt = h.OpensAt.String()
		resp.ClosesAt = h.ClosesAt.String()
		if h.LunchStart != nil {
			resp.LunchStart = ptr.Ptr(h.LunchStart.String())
		}
		if h.LunchEnd != nil {
			resp.LunchEnd = ptr.Ptr(h.LunchEnd.String())
		}
	}
	return resp
}

// FromDomainBranchSchedule конвертирует недельное расписание в response,
// заполняя отсутствующие дни закрытыми
func FromDomainBranchSchedule(s *domain.BranchSchedule) *BranchScheduleResponse {
	days := make([]*WeekdayHoursResponse, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if hours := s.HoursFor(d); hours != nil {
			days = append(days, FromDomainWeekdayHours(hours))
		} else {
			days = append(days, &WeekdayHoursResponse{Weekday: int(d), IsOpen: false})
		}
	}
	return &BranchScheduleResponse{
		BranchID: s.BranchID,
		Days:     days,
	}
}

// FromDomainBlock конвертирует domain модель в response
func FromDomainBlock(b *domain.Block) *BlockResponse {
	resp := &BlockResponse{
		ID:       b.ID,
		BarberID: b.BarberID,
		BranchID: b.BranchID,
		Kind:     string(b.Kind),
		Reason:   b.Reason,
	}
	if b.Date != nil {
		resp.Date = ptr.Ptr(b.Date.Format(domain.DateFormat))
	}
	for _, d := range b.Weekdays.Weekdays() {
		resp.Weekdays = append(resp.Weekdays, int(d))
	}
	if b.StartTime != nil {
		resp.StartTime = ptr.Ptr(b.StartTime.String())
	}
	if b.EndTime != nil {
		resp.EndTime = ptr.Ptr(b.EndTime.String())
	}
	return resp
}

// FromDomainBlockList конвертирует список блокировок в response
func FromDomainBlockList(blocks []*domain.Block) *BlockListResponse {
	responses := make([]*BlockResponse, 0, len(blocks))
	for _, b := range blocks {
		responses = append(responses, FromDomainBlock(b))
	}
	return &BlockListResponse{
		Blocks: responses,
		Total:  len(responses),
	}
}
