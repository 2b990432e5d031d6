package domain

import (
	"errors"
	"time"
)

// WireDateLayout is the ISO date format used by the medres API.
const WireDateLayout = "2006-01-02"

var (
	ErrInvalidRange = errors.New("check-out must be after check-in")
	ErrMissingDates = errors.New("check-in and check-out are required")
	ErrDateInPast   = errors.New("dates must not be before today")
)

// ParseWireDate parses an ISO yyyy-MM-dd wire date into a UTC day.
func ParseWireDate(value string) (time.Time, error) {
	return time.ParseInLocation(WireDateLayout, value, time.UTC)
}

// FormatWireDate renders a date in the ISO wire format.
func FormatWireDate(t time.Time) string {
	return t.Format(WireDateLayout)
}

// DayOf truncates a timestamp to its UTC calendar day.
func DayOf(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NightsBetween returns the whole-day count between check-in and check-out.
// The count is always recomputed from the dates, never trusted from stale
// client state.
func NightsBetween(checkIn, checkOut time.Time) (int, error) {
	from := DayOf(checkIn)
	to := DayOf(checkOut)
	if !to.After(from) {
		return 0, ErrInvalidRange
	}
	return int(to.Sub(from) / (24 * time.Hour)), nil
}

// RangesOverlap reports whether two closed-open stay intervals share at least
// one night. No booking path calls this yet: the backend performs no
// double-booking check and this front-end reproduces that gap.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return DayOf(aStart).Before(DayOf(bEnd)) && DayOf(bStart).Before(DayOf(aEnd))
}

// BeforeToday reports whether date falls strictly before today's calendar day.
func BeforeToday(date, today time.Time) bool {
	return DayOf(date).Before(DayOf(today))
}
