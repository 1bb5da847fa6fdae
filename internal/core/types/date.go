package types

import "time"

// ISODateLayout is the wire format for calendar dates.
const ISODateLayout = "2006-01-02"

// Day truncates a timestamp to its UTC calendar day.
// All inventory dates are stored day-precise.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current UTC calendar day.
func Today() time.Time {
	return Day(time.Now())
}

// ParseDay parses a YYYY-MM-DD string into a UTC calendar day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(ISODateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// FormatDay renders a timestamp as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.UTC().Format(ISODateLayout)
}

// DaysBetween returns every calendar day in the closed interval [from, to].
// Returns nil when from is after to.
func DaysBetween(from, to time.Time) []time.Time {
	from, to = Day(from), Day(to)
	if from.After(to) {
		return nil
	}

	var days []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// IsWeekend reports whether the day falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.UTC().Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
