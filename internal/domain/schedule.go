package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/mtrevino/BarberPro-SchedulingService/pkg/types"
)

// ErrInvalidWeekdayHours возвращается при нарушении инвариантов расписания
var ErrInvalidWeekdayHours = errors.New("domain: invalid weekday hours")

// WeekdayHours represents the business hours of a branch for one weekday.
// A branch has at most one record per weekday; an absent record means the
// branch is closed that day (fail closed).
type WeekdayHours struct {
	ID       int64
	BranchID int64
	Weekday  time.Weekday
	IsOpen   bool

	OpensAt  types.TimeString
	ClosesAt types.TimeString

	// Optional lunch window, both set or both nil
	LunchStart *types.TimeString
	LunchEnd   *types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the weekday hours invariants:
// opensAt < closesAt and, if a lunch window is present,
// opensAt <= lunchStart < lunchEnd <= closesAt.
// A closed day carries no time constraints.
func (h *WeekdayHours) Validate() error {
	if !h.IsOpen {
		return nil
	}

	if err := h.OpensAt.Validate(); err != nil {
		return fmt.Errorf("%w: opensAt: %v", ErrInvalidWeekdayHours, err)
	}
	if err := h.ClosesAt.Validate(); err != nil {
		return fmt.Errorf("%w: closesAt: %v", ErrInvalidWeekdayHours, err)
	}
	if !h.OpensAt.IsBefore(h.ClosesAt) {
		return fmt.Errorf("%w: opensAt %s must be before closesAt %s", ErrInvalidWeekdayHours, h.OpensAt, h.ClosesAt)
	}

	if (h.LunchStart == nil) != (h.LunchEnd == nil) {
		return fmt.Errorf("%w: lunch window must have both start and end", ErrInvalidWeekdayHours)
	}
	if h.LunchStart == nil {
		return nil
	}

	if err := h.LunchStart.Validate(); err != nil {
		return fmt.Errorf("%w: lunchStart: %v", ErrInvalidWeekdayHours, err)
	}
	if err := h.LunchEnd.Validate(); err != nil {
		return fmt.Errorf("%w: lunchEnd: %v", ErrInvalidWeekdayHours, err)
	}
	if !h.LunchStart.IsBefore(*h.LunchEnd) {
		return fmt.Errorf("%w: lunchStart %s must be before lunchEnd %s", ErrInvalidWeekdayHours, *h.LunchStart, *h.LunchEnd)
	}
	if h.LunchStart.IsBefore(h.OpensAt) || h.LunchEnd.IsAfter(h.ClosesAt) {
		return fmt.Errorf("%w: lunch window must lie within business hours", ErrInvalidWeekdayHours)
	}

	return nil
}

// Span returns the [opensAt, closesAt) interval in minutes since midnight
func (h *WeekdayHours) Span() (Interval, error) {
	opens, err := h.OpensAt.Minutes()
	if err != nil {
		return Interval{}, err
	}
	closes, err := h.ClosesAt.Minutes()
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: opens, End: closes}, nil
}

// LunchInterval returns the lunch window in minutes since midnight,
// or nil if no lunch window is configured
func (h *WeekdayHours) LunchInterval() (*Interval, error) {
	if h.LunchStart == nil || h.LunchEnd == nil {
		return nil, nil
	}
	start, err := h.LunchStart.Minutes()
	if err != nil {
		return nil, err
	}
	end, err := h.LunchEnd.Minutes()
	if err != nil {
		return nil, err
	}
	return &Interval{Start: start, End: end}, nil
}

// BranchSchedule is the full weekly schedule of a branch, keyed by weekday
type BranchSchedule struct {
	BranchID int64
	Days     map[time.Weekday]*WeekdayHours
}

// HoursFor returns the hours record for the given weekday, or nil if none exists
func (s *BranchSchedule) HoursFor(weekday time.Weekday) *WeekdayHours {
	if s == nil || s.Days == nil {
		return nil
	}
	return s.Days[weekday]
}

// IsOpenOn resolves the date's weekday and returns the open flag.
// A missing record means closed (fail closed).
func (s *BranchSchedule) IsOpenOn(date time.Time) bool {
	hours := s.HoursFor(date.Weekday())
	return hours != nil && hours.IsOpen
}
