package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 15, 9, 5, 0, 0, time.UTC))
	assert.Equal(t, "09:05", ts.String())
}

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid morning", input: "09:00"},
		{name: "valid midnight", input: "00:00"},
		{name: "valid last minute", input: "23:59"},
		{name: "missing leading zero", input: "9:00", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "out of range minute", input: "10:60", wantErr: true},
		{name: "no separator", input: "0900", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
		{name: "trailing chars", input: "09:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{input: "00:00", want: 0},
		{input: "09:00", want: 540},
		{input: "13:30", want: 810},
		{input: "23:59", want: 1439},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			require.NoError(t, err)

			minutes, err := ts.Minutes()
			require.NoError(t, err)
			assert.Equal(t, tt.want, minutes)
		})
	}
}

func TestFromMinutes(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    string
		wantErr bool
	}{
		{name: "midnight", minutes: 0, want: "00:00"},
		{name: "morning", minutes: 540, want: "09:00"},
		{name: "last minute", minutes: 1439, want: "23:59"},
		{name: "negative", minutes: -1, wantErr: true},
		{name: "full day", minutes: 1440, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := FromMinutes(tt.minutes)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMinutesOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ts.String())
		})
	}
}

func TestFromMinutes_RoundTrip(t *testing.T) {
	// Минуты -> строка -> минуты без потерь
	for _, minutes := range []int{0, 1, 59, 60, 540, 810, 1439} {
		ts, err := FromMinutes(minutes)
		require.NoError(t, err)

		back, err := ts.Minutes()
		require.NoError(t, err)
		assert.Equal(t, minutes, back)
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)

	later, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "10:30", later.String())

	_, err = ts.AddMinutes(20 * 60)
	assert.ErrorIs(t, err, ErrMinutesOutOfRange)
}

func TestTimeString_Compare(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("10:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, a.IsAfter(b))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("09:00").IsZero())
}
