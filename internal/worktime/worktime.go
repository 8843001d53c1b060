// Package worktime converts wall-clock shift boundaries and calendar days into the values payroll works with.
package worktime

import (
	"fmt"
	"time"

	"github.com/smallbiz-dev/business-manager/backend/internal/domain"
)

const (
	ClockLayout = "15:04"
	DayLayout   = "2006-01-02"
)

func ParseClock(hhmm string) (time.Time, error) {
	t, err := time.Parse(ClockLayout, hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrMalformedTime, hhmm)
	}
	return t, nil
}

func ParseDay(day string) (time.Time, error) {
	t, err := time.Parse(DayLayout, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrMalformedDate, day)
	}
	return t, nil
}

// HoursBetween returns the elapsed hours from start to end.
// An end earlier than start is taken to fall on the following day.
func HoursBetween(start, end string) (float64, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, err
	}

	if e.Before(s) {
		e = e.Add(24 * time.Hour)
	}

	seconds := e.Sub(s) / time.Second
	return float64(seconds) / 3600, nil
}

// WithinPeriod reports whether day lies in the closed range [periodStart, periodEnd].
// An inverted range matches nothing.
func WithinPeriod(day, periodStart, periodEnd string) (bool, error) {
	d, err := ParseDay(day)
	if err != nil {
		return false, err
	}
	s, err := ParseDay(periodStart)
	if err != nil {
		return false, err
	}
	e, err := ParseDay(periodEnd)
	if err != nil {
		return false, err
	}

	return !d.Before(s) && !d.After(e), nil
}
