package domain

import "time"

// sameDay проверяет, что две даты относятся к одному и тому же дню
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// SameDay reports whether two timestamps fall on the same calendar day
func SameDay(a, b time.Time) bool {
	return sameDay(a, b)
}

// DateInPast reports whether the date is strictly before today.
// Only the calendar components are compared, never the underlying
// instants: a request date parsed in UTC and a clock running in the
// configured local zone name the same day by their components even
// though their midnights differ as instants.
func DateInPast(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}
