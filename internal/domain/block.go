package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/mtrevino/BarberPro-SchedulingService/pkg/types"
)

// BlockKind discriminates the three kinds of barber unavailability
type BlockKind string

const (
	// BlockShortBreak recurring break: a weekday set plus a daily [start, end) window
	BlockShortBreak BlockKind = "short_break"
	// BlockPartial one-off block: a specific date plus a [start, end) window
	BlockPartial BlockKind = "partial_block"
	// BlockFullDay one-off closure: a specific date, whole day unavailable
	BlockFullDay BlockKind = "full_day_closure"
)

// ErrInvalidBlock возвращается при нарушении инвариантов блокировки
var ErrInvalidBlock = errors.New("domain: invalid block")

// WeekdaySet is a bit set of weekdays (bit 0 = Sunday ... bit 6 = Saturday)
type WeekdaySet uint8

// NewWeekdaySet builds a set from the given weekdays
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s |= 1 << uint(d)
	}
	return s
}

// Contains returns true if the weekday is in the set
func (s WeekdaySet) Contains(day time.Weekday) bool {
	return s&(1<<uint(day)) != 0
}

// IsEmpty returns true if no weekday is in the set
func (s WeekdaySet) IsEmpty() bool {
	return s == 0
}

// Weekdays returns the members of the set in Sunday..Saturday order
func (s WeekdaySet) Weekdays() []time.Weekday {
	var days []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

// Block is a period during which a barber is deliberately unavailable,
// modeled as a tagged variant so occupancy derivation is one exhaustive
// switch instead of ad hoc branching.
type Block struct {
	ID       int64
	BarberID int64
	BranchID int64
	Kind     BlockKind

	// Date of the one-off kinds (partial_block, full_day_closure)
	Date *time.Time
	// Recurring weekday set of short_break
	Weekdays WeekdaySet
	// Daily window of the time-bounded kinds, nil for full_day_closure
	StartTime *types.TimeString
	EndTime   *types.TimeString

	Reason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the per-kind invariants of the block
func (b *Block) Validate() error {
	switch b.Kind {
	case BlockShortBreak:
		if b.StartTime == nil || b.EndTime == nil {
			return fmt.Errorf("%w: short break requires a time window", ErrInvalidBlock)
		}
	case BlockPartial:
		if b.Date == nil {
			return fmt.Errorf("%w: partial block requires a date", ErrInvalidBlock)
		}
		if b.StartTime == nil || b.EndTime == nil {
			return fmt.Errorf("%w: partial block requires a time window", ErrInvalidBlock)
		}
	case BlockFullDay:
		if b.Date == nil {
			return fmt.Errorf("%w: full day closure requires a date", ErrInvalidBlock)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidBlock, b.Kind)
	}

	if err := b.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidBlock, err)
	}
	if err := b.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: endTime: %v", ErrInvalidBlock, err)
	}
	if !b.StartTime.IsBefore(*b.EndTime) {
		return fmt.Errorf("%w: startTime %s must be before endTime %s", ErrInvalidBlock, *b.StartTime, *b.EndTime)
	}

	return nil
}

// AppliesTo returns true if the block affects the given date.
// A short break with an empty weekday set applies to nothing.
func (b *Block) AppliesTo(date time.Time) bool {
	switch b.Kind {
	case BlockShortBreak:
		return b.Weekdays.Contains(date.Weekday())
	case BlockPartial, BlockFullDay:
		return b.Date != nil && sameDay(*b.Date, date)
	default:
		return false
	}
}

// Window returns the blocked interval contributed on a day the block
// applies to. Full day closures block the whole day.
func (b *Block) Window() (Interval, error) {
	if b.Kind == BlockFullDay {
		return FullDayInterval, nil
	}
	start, err := b.StartTime.Minutes()
	if err != nil {
		return Interval{}, err
	}
	end, err := b.EndTime.Minutes()
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}
