// Package clock converts between "HH:MM" wall-clock strings, minutes since
// midnight and civil calendar dates. Nothing here performs timezone
// conversion: a schedule is read in the shop's implicit local time.
package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour

	calendarLayout = "2006-01-02"
)

var ErrMalformedClock = errors.New("malformed clock value")

// Parse converts "HH:MM" into minutes since midnight.
func Parse(value string) (int, error) {
	hours, minutes, found := strings.Cut(value, ":")
	if !found || len(hours) != 2 || len(minutes) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedClock, value)
	}

	h, err := strconv.Atoi(hours)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedClock, value)
	}

	m, err := strconv.Atoi(minutes)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedClock, value)
	}

	return h*MinutesPerHour + m, nil
}

// Format renders minutes since midnight as "HH:MM".
func Format(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/MinutesPerHour, minutes%MinutesPerHour)
}

// OfDay returns the wall-clock minutes of t in t's own location.
func OfDay(t time.Time) int {
	return t.Hour()*MinutesPerHour + t.Minute()
}

// Date truncates t to its civil date, carried as midnight UTC.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses "YYYY-MM-DD" into a civil date.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(calendarLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed date %q: %w", value, err)
	}

	return date, nil
}

// FormatDate renders a civil date as "YYYY-MM-DD".
func FormatDate(date time.Time) string {
	return date.Format(calendarLayout)
}

// SameDate reports whether a and b fall on the same civil date.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}
