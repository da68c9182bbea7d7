package types

import "time"

// DateOnly strips the time-of-day component, returning midnight UTC of the
// same calendar day. All license and installment math is date-only so that
// the hour a comparison runs at can never shift a status by one day.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from one calendar day to
// another, negative when to precedes from.
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)) / (24 * time.Hour))
}

// AddDays returns the date-only result of adding n days to t.
func AddDays(t time.Time, n int) time.Time {
	return DateOnly(t).AddDate(0, 0, n)
}

// MaxDate returns the later of two times.
func MaxDate(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
