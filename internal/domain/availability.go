package domain

import "time"

// DateStatus represents the availability status of a single calendar date
type DateStatus string

const (
	DateAvailable DateStatus = "available"
	DateBlocked   DateStatus = "blocked"
	DateBooked    DateStatus = "booked"
)

// IsValidDateStatus reports whether s is a recognized calendar status tag.
// A date with no stored status is "unset" for hosts and "unavailable" for
// guests; absence is never written explicitly.
func IsValidDateStatus(s DateStatus) bool {
	return s == DateAvailable || s == DateBlocked || s == DateBooked
}

// CalendarDay is one dated entry of a property's availability calendar
type CalendarDay struct {
	PropertyID int64
	Day        time.Time // UTC midnight
	Status     DateStatus
}

// DateOnly truncates t to UTC midnight. All calendar reads and writes go
// through this normalization so a date compares equal regardless of the
// wall-clock time it was produced with.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysInRange returns every date in [start, end], inclusive on both ends.
// The checkout day itself is part of a booking's range, matching the
// calendar semantics the rest of the system relies on.
func DaysInRange(start, end time.Time) []time.Time {
	start = DateOnly(start)
	end = DateOnly(end)

	days := make([]time.Time, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// MonthBounds returns the first day of the month and the first day of the
// following month, both at UTC midnight.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, 0)
}
