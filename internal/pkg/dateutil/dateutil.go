// Package dateutil centralizes every day-boundary decision the attendance
// core makes. All callers derive "which calendar day does this instant
// belong to" through LocalDateOf so clock-in attribution and summary query
// boundaries cannot drift apart.
package dateutil

import (
	"fmt"
	"time"
)

// MonthRange returns the first day of (year, month) and the first day of the
// following month. The end is exclusive; December rolls over to January.
func MonthRange(year int, month time.Month) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0)
	return start, end
}

// DaysInMonth returns the number of calendar days in (year, month).
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// EffectiveDays returns how many days of (year, month) have elapsed as of
// today. For the in-progress month that is today's day-of-month, so a
// summary does not count unelapsed days as absent; for any other month it
// is the full day count.
func EffectiveDays(year int, month time.Month, today time.Time) int {
	if today.Year() == year && today.Month() == month {
		return today.Day()
	}
	return DaysInMonth(year, month)
}

// LocalDateOf projects a UTC instant into the organizational timezone and
// returns the local calendar date as a midnight-UTC time.Time. The result
// is what gets stored as attendance_date, so a late-night clock-in lands on
// the user's day rather than the raw UTC date.
func LocalDateOf(instant time.Time, loc *time.Location) time.Time {
	local := instant.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// LocalDayBounds returns the UTC instants at which the local calendar day
// containing instant begins and ends. The end is exclusive. Use these to
// range over created_at timestamps, which are stored as instants, not as
// calendar dates.
func LocalDayBounds(instant time.Time, loc *time.Location) (start, end time.Time) {
	local := instant.In(loc)
	s := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return s.UTC(), s.AddDate(0, 0, 1).UTC()
}

// ParseMonth parses a YYYY-MM month identifier.
func ParseMonth(month string) (year int, m time.Month, err error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", month, err)
	}
	return t.Year(), t.Month(), nil
}

// FormatMonth renders a date as its YYYY-MM month identifier.
func FormatMonth(t time.Time) string {
	return t.Format("2006-01")
}

// PrevMonth returns the YYYY-MM identifier of the month before the given one.
func PrevMonth(year int, month time.Month) string {
	start, _ := MonthRange(year, month)
	return FormatMonth(start.AddDate(0, -1, 0))
}

// MinutesToHM renders minutes as "8h 30m" for spreadsheet cells; nil renders
// as an em dash like the rest of the export.
func MinutesToHM(minutes *int) string {
	if minutes == nil {
		return "—"
	}
	return fmt.Sprintf("%dh %dm", *minutes/60, *minutes%60)
}

// ResolveDateRange fills absent export bounds with the current month in the
// organizational timezone.
func ResolveDateRange(start, end *time.Time, now time.Time, loc *time.Location) (time.Time, time.Time) {
	if start != nil && end != nil {
		return *start, *end
	}
	today := LocalDateOf(now, loc)
	first, next := MonthRange(today.Year(), today.Month())
	if start == nil {
		s := first
		start = &s
	}
	if end == nil {
		e := next.AddDate(0, 0, -1)
		end = &e
	}
	return *start, *end
}
