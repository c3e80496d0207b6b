// Package datetime provides date and time utility functions.
package datetime

import (
	"fmt"
	"strings"
	"time"

	"github.com/iwvelando/calckit/pkg/constants"
)

const (
	// DateLayout is the calendar date format accepted in calculator inputs.
	DateLayout = constants.DateLayout

	secondsPerDay = 24 * 60 * 60
)

// MustParseDate parses a YYYY-MM-DD string and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseDate(dateStr string) time.Time {
	t, err := ParseDate(dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDate parses either a calendar date (YYYY-MM-DD) or an RFC 3339
// timestamp. Calendar dates are returned at midnight UTC.
func ParseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse(DateLayout, trimmed); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected %s or RFC 3339", value, DateLayout)
	}
	return t, nil
}

// ParseTimestamp parses an RFC 3339 timestamp, falling back to a calendar
// date at midnight UTC.
func ParseTimestamp(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return t, nil
	}
	return ParseDate(trimmed)
}

// Day truncates t to its calendar date at midnight UTC, keeping the
// year/month/day as observed in t's own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the calendar date n days after t.
func AddDays(t time.Time, n int) time.Time {
	return Day(t).AddDate(0, 0, n)
}

// DaysBetween returns the number of whole calendar days from start to end.
// The result is negative when end precedes start. Spans are not limited by
// the range of time.Duration.
func DaysBetween(start, end time.Time) int {
	return int((Day(end).Unix() - Day(start).Unix()) / secondsPerDay)
}

// Breakdown expresses the span from start to end as whole years, months and
// days. Month steps clamp to the last day of shorter months, so Jan 31 plus
// one month is Feb 28/29. start must not be after end.
func Breakdown(start, end time.Time) (years, months, days int) {
	s, e := Day(start), Day(end)
	total := (e.Year()-s.Year())*constants.MonthsPerYear + int(e.Month()) - int(s.Month())
	if total > 0 && AddMonthsClamped(s, total).After(e) {
		total--
	}
	anchor := AddMonthsClamped(s, total)
	return total / constants.MonthsPerYear, total % constants.MonthsPerYear, DaysBetween(anchor, e)
}

// AddMonthsClamped adds n calendar months to t, clamping the day of month to
// the length of the target month instead of overflowing into the next one.
func AddMonthsClamped(t time.Time, n int) time.Time {
	y, m, d := Day(t).Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
