package domain

import "sort"

// Interval is a half-open [Start, End) time window in minutes since midnight.
// Half-open semantics mean touching intervals do not overlap: an appointment
// ending at 10:00 does not conflict with one starting at 10:00.
type Interval struct {
	Start int
	End   int
}

// FullDayInterval covers the whole day [00:00, 24:00).
var FullDayInterval = Interval{Start: 0, End: 24 * 60}

// IsValid returns true if the interval is non-empty and fits within a day.
func (i Interval) IsValid() bool {
	return i.Start >= 0 && i.Start < i.End && i.End <= 24*60
}

// Overlaps returns true if the two half-open intervals share at least one minute.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// Contains returns true if the point (minutes since midnight) lies within the interval.
func (i Interval) Contains(point int) bool {
	return i.Start <= point && point < i.End
}

// SortIntervals orders intervals ascending by start, then by end.
// Intervals are not merged: overlap checks downstream are tolerant of
// redundant and overlapping members.
func SortIntervals(intervals []Interval) {
	sort.Slice(intervals, func(a, b int) bool {
		if intervals[a].Start != intervals[b].Start {
			return intervals[a].Start < intervals[b].Start
		}
		return intervals[a].End < intervals[b].End
	})
}
