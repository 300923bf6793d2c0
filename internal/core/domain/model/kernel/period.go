package kernel

import (
	"fmt"
	"time"

	"scheduling/internal/pkg/errs"
	"scheduling/internal/pkg/guard"
)

// PeriodLengthDays is the fixed length of a scheduling period.
// Every schedule covers exactly four calendar weeks.
const PeriodLengthDays = 28

// ErrPeriodIsNotConstructed is returned when attempting to use an improperly
// initialized Period. Periods must be created using NewPeriod to ensure the
// begin date has been validated.
var ErrPeriodIsNotConstructed = errs.NewValueIsRequiredError(
	"period must be created via NewPeriod constructor")

// Period represents the fixed 28-day scheduling horizon of one schedule job.
// It is an immutable value object anchored at a begin date that is guaranteed
// to fall on a Monday, so the horizon always covers four whole Monday-to-Sunday
// weeks.
//
// The zero value of Period is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	begin := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC) // a Monday
//	period, err := kernel.NewPeriod(begin)
//	if err != nil {
//	    // Handle validation error
//	}
//	for _, day := range period.Days() {
//	    // day 0 .. day 27
//	}
type Period struct { //nolint:recvcheck //using for validation
	begin time.Time
	guard guard.ConstructorGuard
}

// NewPeriod creates a Period beginning on the given date.
// The date is truncated to midnight UTC; the time-of-day and location of the
// input are irrelevant to the schedule. The begin date must fall on a Monday:
// a non-Monday date is rejected, not silently shifted, so a caller submitting
// the wrong date finds out at intake rather than receiving a schedule for a
// period it did not ask for.
func NewPeriod(beginDate time.Time) (Period, error) {
	begin := time.Date(beginDate.Year(), beginDate.Month(), beginDate.Day(), 0, 0, 0, 0, time.UTC)

	if begin.Weekday() != time.Monday {
		return Period{}, errs.NewValueIsInvalidErrorWithCause(
			"periodBeginDate",
			fmt.Errorf("%s falls on a %s, the period must begin on a Monday",
				begin.Format(time.DateOnly), begin.Weekday()),
		)
	}

	return Period{
		begin: begin,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Period was properly constructed using the
// constructor. The zero value of Period is invalid and will fail this
// validation.
func (p Period) Validate() error {
	return p.guard.Validate(ErrPeriodIsNotConstructed)
}

// BeginDate returns the first day of the period (midnight UTC, a Monday).
func (p Period) BeginDate() time.Time {
	return p.begin
}

// EndDate returns the last day of the period (midnight UTC, a Sunday).
func (p Period) EndDate() time.Time {
	return p.begin.AddDate(0, 0, PeriodLengthDays-1)
}

// Day returns the date at the given zero-based offset into the period.
// Offsets outside [0, PeriodLengthDays) are the caller's error; the returned
// date is computed regardless so iteration helpers stay trivial.
func (p Period) Day(offset int) time.Time {
	return p.begin.AddDate(0, 0, offset)
}

// Days returns all dates of the period in order, from BeginDate to EndDate.
func (p Period) Days() []time.Time {
	days := make([]time.Time, PeriodLengthDays)
	for i := range days {
		days[i] = p.begin.AddDate(0, 0, i)
	}
	return days
}

// Contains reports whether the given date (compared by calendar day, UTC)
// falls inside the period.
func (p Period) Contains(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(p.begin) && !d.After(p.EndDate())
}

// IsEqual compares two periods by their begin date.
func (p Period) IsEqual(other Period) bool {
	return p.begin.Equal(other.begin)
}

// String returns the period as "YYYY-MM-DD..YYYY-MM-DD".
func (p Period) String() string {
	return p.begin.Format(time.DateOnly) + ".." + p.EndDate().Format(time.DateOnly)
}
