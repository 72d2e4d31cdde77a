// Package businesshours measures how much of a wall-clock interval falls
// inside business hours: Monday to Friday, 09:00 to 17:00 UTC.
package businesshours

import "time"

const (
	openingHour = 9
	closingHour = 17

	// Length of the business window of one business day.
	businessDay = (closingHour - openingHour) * time.Hour
	// Credit given to any week-sized step.
	businessWeek = 5 * businessDay
)

// IsBusinessDay reports whether t falls on a weekday in UTC.
func IsBusinessDay(t time.Time) bool {
	switch t.UTC().Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return true
}

// IsBusinessInstant reports whether t is inside the business window of a
// business day. Both 09:00:00.000 and 17:00:00.000 are inside; anything after
// 17:00:00.000 is not.
func IsBusinessInstant(t time.Time) bool {
	if !IsBusinessDay(t) {
		return false
	}
	u := t.UTC()
	hour := u.Hour()
	if hour >= openingHour && hour < closingHour {
		return true
	}
	return hour == closingHour && u.Minute() == 0 && u.Second() == 0 && u.Nanosecond() == 0
}

// SinceOpening returns the time elapsed between 09:00 of t's UTC day and t.
// It is negative when t is before 09:00.
func SinceOpening(t time.Time) time.Duration {
	return t.Sub(opening(t))
}

// UntilClosing returns the time left between t and 17:00 of t's UTC day. It is
// negative when t is after 17:00.
func UntilClosing(t time.Time) time.Duration {
	return closing(t).Sub(t)
}

func opening(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), openingHour, 0, 0, 0, time.UTC)
}

func closing(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), closingHour, 0, 0, 0, time.UTC)
}
