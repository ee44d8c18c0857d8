package domain

import "github.com/mtrevino/BarberPro-SchedulingService/pkg/types"

// Slot represents a candidate appointment start time at a fixed granularity
type Slot struct {
	StartTime types.TimeString
	Available bool
}
