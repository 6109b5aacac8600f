package domain

import "time"

// DateLayout is the calendar-date format stored on records (joined, date).
const DateLayout = time.DateOnly

// FormatDate renders t as a stored calendar date.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate parses a stored calendar date. ok is false for empty or malformed input.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
