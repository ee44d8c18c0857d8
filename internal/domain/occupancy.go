package domain

import (
	"fmt"
	"time"
)

// HasFullDayClosure reports whether any block closes the whole given date.
// The slot engine treats such a date like a closed day: no candidates at all.
func HasFullDayClosure(blocks []*Block, date time.Time) bool {
	for _, b := range blocks {
		if b.Kind == BlockFullDay && b.AppliesTo(date) {
			return true
		}
	}
	return false
}

// BlockIntervals derives the occupied intervals that the barber's blocks
// contribute on the given date. A full day closure short-circuits to the
// single [00:00, 24:00) interval. Intervals are ordered but never merged.
// A stored window that fails to parse is corrupted data and surfaces as
// an error; it must not silently free the time it was meant to reserve.
func BlockIntervals(blocks []*Block, date time.Time) ([]Interval, error) {
	if HasFullDayClosure(blocks, date) {
		return []Interval{FullDayInterval}, nil
	}

	intervals := make([]Interval, 0, len(blocks))
	for _, b := range blocks {
		if !b.AppliesTo(date) {
			continue
		}
		window, err := b.Window()
		if err != nil {
			return nil, fmt.Errorf("block id=%d: %w", b.ID, err)
		}
		intervals = append(intervals, window)
	}

	SortIntervals(intervals)
	return intervals, nil
}

// BookedIntervals derives the occupied intervals of existing appointments.
// Cancelled appointments contribute nothing (their slot is free); the
// optional exclusion lets an edit-in-progress ignore its own reservation.
// An unparseable start time is corrupted data and surfaces as an error.
func BookedIntervals(appointments []*Appointment, excludeID *int64) ([]Interval, error) {
	intervals := make([]Interval, 0, len(appointments))
	for _, a := range appointments {
		if !a.OccupiesSlot() {
			continue
		}
		if excludeID != nil && a.ID == *excludeID {
			continue
		}
		interval, err := a.Interval()
		if err != nil {
			return nil, fmt.Errorf("appointment id=%d: %w", a.ID, err)
		}
		intervals = append(intervals, interval)
	}

	SortIntervals(intervals)
	return intervals, nil
}

// BuildOccupancy composes the full occupancy set for a barber and date:
// the lunch window (if present), the barber's blocks and the booked
// appointments. Both the slot engine and the conflict check evaluate
// candidates against this one set, so a slot rendered as available can
// never be rejected by the booking validation on the same snapshot.
func BuildOccupancy(hours *WeekdayHours, blocks []*Block, appointments []*Appointment, date time.Time, excludeID *int64) ([]Interval, error) {
	var occupancy []Interval

	if hours != nil {
		lunch, err := hours.LunchInterval()
		if err != nil {
			return nil, err
		}
		if lunch != nil {
			occupancy = append(occupancy, *lunch)
		}
	}

	blocked, err := BlockIntervals(blocks, date)
	if err != nil {
		return nil, err
	}
	occupancy = append(occupancy, blocked...)

	booked, err := BookedIntervals(appointments, excludeID)
	if err != nil {
		return nil, err
	}
	occupancy = append(occupancy, booked...)

	SortIntervals(occupancy)
	return occupancy, nil
}

// HasConflict returns true if the candidate interval overlaps any member
// of the occupancy set. Half-open semantics: touching edges do not conflict.
func HasConflict(occupancy []Interval, candidate Interval) bool {
	for _, occupied := range occupancy {
		if candidate.Overlaps(occupied) {
			return true
		}
	}
	return false
}
