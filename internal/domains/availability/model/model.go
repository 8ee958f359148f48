// Package model computes bookable dates and start times from a weekly
// schedule. Everything here is pure: no storage, no clock.
package model

import (
	"fmt"
	"iter"
	"time"

	tenantModel "beautyhub/internal/domains/tenant/model"
	"beautyhub/shared/clock"
	"beautyhub/shared/failure"
)

const (
	FieldTenant      = "tenant"
	FieldSchedule    = "schedule"
	FieldDuration    = "duration"
	FieldGranularity = "granularity"
	FieldDate        = "date"
	FieldHorizon     = "horizon"

	// MaxHorizonDays caps how far ahead dates are listed.
	MaxHorizonDays = 365
)

// Interval is a busy stretch of a staff member's day, [Start, End).
type Interval struct {
	Start int
	End   int
}

// CandidateDates yields the open dates among the horizonDays calendar days
// starting at from, in order. Closed weekdays are skipped; a malformed entry
// anywhere in the schedule is an error rather than a shorter list.
func CandidateDates(schedule tenantModel.WeeklySchedule, from time.Time, horizonDays int) (iter.Seq[time.Time], error) {
	if horizonDays <= 0 || horizonDays > MaxHorizonDays {
		return nil, failure.InvalidInput(FieldHorizon, fmt.Sprintf("horizon must be between 1 and %d days", MaxHorizonDays))
	}

	if err := schedule.Validate(); err != nil {
		return nil, failure.InvalidInput(FieldSchedule, err.Error())
	}

	start := clock.Date(from)

	return func(yield func(time.Time) bool) {
		for offset := range horizonDays {
			date := start.AddDate(0, 0, offset)

			if _, open, _ := schedule.Window(date.Weekday()); !open {
				continue
			}

			if !yield(date) {
				return
			}
		}
	}, nil
}

// SlotsForDate yields every start minute from opening time, stepping by
// granularity, whose service of the given duration ends by closing time.
// A closed day yields nothing.
func SlotsForDate(schedule tenantModel.WeeklySchedule, date time.Time, duration, granularity int) (iter.Seq[int], error) {
	if duration <= 0 {
		return nil, failure.InvalidInput(FieldDuration, "total duration must be positive")
	}

	if granularity <= 0 {
		return nil, failure.InvalidInput(FieldGranularity, "granularity must be positive")
	}

	window, open, err := schedule.Window(date.Weekday())
	if err != nil {
		return nil, failure.InvalidInput(FieldSchedule, err.Error())
	}

	return func(yield func(int) bool) {
		if !open {
			return
		}

		for start := window.Open; window.Fits(start, duration); start += granularity {
			if !yield(start) {
				return
			}
		}
	}, nil
}

// Free drops the starts before notBefore and those whose [start, start+duration)
// intersects a busy interval.
func Free(slots iter.Seq[int], duration, notBefore int, busy []Interval) iter.Seq[int] {
	return func(yield func(int) bool) {
		for start := range slots {
			if start < notBefore || collides(start, start+duration, busy) {
				continue
			}

			if !yield(start) {
				return
			}
		}
	}
}

func collides(start, end int, busy []Interval) bool {
	for _, interval := range busy {
		if start < interval.End && interval.Start < end {
			return true
		}
	}

	return false
}
