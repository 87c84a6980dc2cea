package domain

import "time"

// All lending arithmetic works on whole civil days. Dates are normalized to
// UTC midnight so subtraction yields exact day counts across month boundaries.

// Date builds a normalized civil date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate normalizes an arbitrary timestamp to its civil date.
func Truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n whole days after t.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween returns the whole days from a to b (negative if b is before a).
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
