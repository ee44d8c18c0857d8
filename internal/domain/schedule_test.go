package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtrevino/BarberPro-SchedulingService/pkg/types"
)

func timePtr(s string) *types.TimeString {
	ts := types.TimeString(s)
	return &ts
}

func TestWeekdayHours_Validate(t *testing.T) {
	tests := []struct {
		name    string
		hours   WeekdayHours
		wantErr bool
	}{
		{
			name: "valid without lunch",
			hours: WeekdayHours{
				IsOpen:   true,
				OpensAt:  "09:00",
				ClosesAt: "19:00",
			},
		},
		{
			name: "valid with lunch",
			hours: WeekdayHours{
				IsOpen:     true,
				OpensAt:    "09:00",
				ClosesAt:   "19:00",
				LunchStart: timePtr("13:00"),
				LunchEnd:   timePtr("14:00"),
			},
		},
		{
			name: "closed day carries no constraints",
			hours: WeekdayHours{
				IsOpen: false,
			},
		},
		{
			name: "opens equals closes",
			hours: WeekdayHours{
				IsOpen:   true,
				OpensAt:  "09:00",
				ClosesAt: "09:00",
			},
			wantErr: true,
		},
		{
			name: "opens after closes",
			hours: WeekdayHours{
				IsOpen:   true,
				OpensAt:  "19:00",
				ClosesAt: "09:00",
			},
			wantErr: true,
		},
		{
			name: "lunch start without end",
			hours: WeekdayHours{
				IsOpen:     true,
				OpensAt:    "09:00",
				ClosesAt:   "19:00",
				LunchStart: timePtr("13:00"),
			},
			wantErr: true,
		},
		{
			name: "lunch outside business hours",
			hours: WeekdayHours{
				IsOpen:     true,
				OpensAt:    "09:00",
				ClosesAt:   "19:00",
				LunchStart: timePtr("18:30"),
				LunchEnd:   timePtr("19:30"),
			},
			wantErr: true,
		},
		{
			name: "inverted lunch window",
			hours: WeekdayHours{
				IsOpen:     true,
				OpensAt:    "09:00",
				ClosesAt:   "19:00",
				LunchStart: timePtr("14:00"),
				LunchEnd:   timePtr("13:00"),
			},
			wantErr: true,
		},
		{
			name: "malformed opensAt",
			hours: WeekdayHours{
				IsOpen:   true,
				OpensAt:  "9:00",
				ClosesAt: "19:00",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.hours.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWeekdayHours)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWeekdayHours_Span(t *testing.T) {
	hours := WeekdayHours{IsOpen: true, OpensAt: "09:00", ClosesAt: "19:00"}

	span, err := hours.Span()
	require.NoError(t, err)
	assert.Equal(t, Interval{Start: 540, End: 1140}, span)
}

func TestWeekdayHours_LunchInterval(t *testing.T) {
	withLunch := WeekdayHours{
		IsOpen:     true,
		OpensAt:    "09:00",
		ClosesAt:   "19:00",
		LunchStart: timePtr("13:00"),
		LunchEnd:   timePtr("14:00"),
	}

	lunch, err := withLunch.LunchInterval()
	require.NoError(t, err)
	require.NotNil(t, lunch)
	assert.Equal(t, Interval{Start: 780, End: 840}, *lunch)

	withoutLunch := WeekdayHours{IsOpen: true, OpensAt: "09:00", ClosesAt: "19:00"}
	lunch, err = withoutLunch.LunchInterval()
	require.NoError(t, err)
	assert.Nil(t, lunch)
}

func TestBranchSchedule_IsOpenOn(t *testing.T) {
	// Понедельник 2026-09-14
	monday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	sched := &BranchSchedule{
		BranchID: 1,
		Days: map[time.Weekday]*WeekdayHours{
			time.Monday:  {IsOpen: true, OpensAt: "09:00", ClosesAt: "19:00"},
			time.Tuesday: {IsOpen: false},
		},
	}

	assert.True(t, sched.IsOpenOn(monday))
	assert.False(t, sched.IsOpenOn(tuesday), "explicit closed day")
	// Отсутствие записи трактуется как закрытый день
	assert.False(t, sched.IsOpenOn(sunday), "missing weekday record fails closed")
}
