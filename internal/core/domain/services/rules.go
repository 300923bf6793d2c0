package services

import (
	"fmt"
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedulejob"
	"scheduling/internal/pkg/errs"
	"scheduling/internal/pkg/guard"
)

// daysPerWeek is the length of the rolling window the days-off
// constraints are evaluated over.
const daysPerWeek = 7

// ErrRuleSetIsNotConstructed is returned when a RuleSet instance was not
// created through the NewRuleSet factory method.
var ErrRuleSetIsNotConstructed = errs.NewValueIsRequiredError("ruleSet")

// Rule names identify which scheduling constraint a Violation refers to.
const (
	RuleMinDaysOff          = "MIN_DAYS_OFF"
	RuleMaxDaysOff          = "MAX_DAYS_OFF"
	RuleMorningAfterEvening = "MORNING_AFTER_EVENING"
	RuleDailyBalance        = "DAILY_BALANCE"
)

// Violation describes a single breach of a scheduling constraint found in
// a generated plan. Violations are advisory: a plan with violations is
// still usable, the greedy planner simply could not do better under the
// configured rules.
type Violation struct {
	// Rule names the breached constraint, e.g. RuleMinDaysOff.
	Rule string

	// Date is the calendar day on which the breach occurs. For window
	// rules it is the first day of the offending 7-day window.
	Date time.Time

	// StaffID identifies the affected staff member.
	// It is nil for day-level rules such as RuleDailyBalance.
	StaffID *kernel.UUID

	// Message is a human-readable description of the breach.
	Message string
}

// RuleSet is a domain service holding the configured scheduling
// constraints and deciding whether a shift may be assigned to a staff
// member on a given day.
//
// The constraints are:
//   - every rolling 7-day window of the period must contain at least
//     MinDaysOff and at most MaxDaysOff days off per staff member
//   - a Morning shift must not directly follow an Evening shift
//   - on every day the number of Morning and Evening shifts must not
//     differ by more than MaxDailyShiftDifference
type RuleSet struct {
	minDaysOff   int
	maxDaysOff   int
	maxShiftDiff int

	guard guard.ConstructorGuard
}

// NewRuleSet creates a validated RuleSet.
//
// Parameters:
//   - minDaysOff: minimum days off per rolling 7-day window (0..7)
//   - maxDaysOff: maximum days off per rolling 7-day window (minDaysOff..7)
//   - maxShiftDiff: maximum allowed difference between Morning and
//     Evening head counts on a single day (must not be negative)
//
// Returns:
//   - RuleSet: the configured rule set if all parameters are valid
//   - error: validation error otherwise
func NewRuleSet(minDaysOff, maxDaysOff, maxShiftDiff int) (RuleSet, error) {
	if minDaysOff < 0 || minDaysOff > daysPerWeek {
		return RuleSet{}, errs.NewValueIsOutOfRangeError("minDaysOffPerWeek", minDaysOff, 0, daysPerWeek)
	}
	if maxDaysOff < minDaysOff || maxDaysOff > daysPerWeek {
		return RuleSet{}, errs.NewValueIsOutOfRangeError("maxDaysOffPerWeek", maxDaysOff, minDaysOff, daysPerWeek)
	}
	if maxShiftDiff < 0 {
		return RuleSet{}, errs.NewValueIsInvalidErrorWithCause(
			"maxDailyShiftDifference",
			fmt.Errorf("%d must not be negative", maxShiftDiff),
		)
	}

	return RuleSet{
		minDaysOff:   minDaysOff,
		maxDaysOff:   maxDaysOff,
		maxShiftDiff: maxShiftDiff,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the RuleSet was created via NewRuleSet.
// The zero value is invalid.
func (r RuleSet) Validate() error {
	return r.guard.Validate(ErrRuleSetIsNotConstructed)
}

// MinDaysOff returns the minimum days off per rolling 7-day window.
func (r RuleSet) MinDaysOff() int {
	return r.minDaysOff
}

// MaxDaysOff returns the maximum days off per rolling 7-day window.
func (r RuleSet) MaxDaysOff() int {
	return r.maxDaysOff
}

// MaxShiftDiff returns the maximum allowed Morning/Evening head count
// difference on a single day.
func (r RuleSet) MaxShiftDiff() int {
	return r.maxShiftDiff
}

// CanAssign decides whether the candidate shift may be assigned to a staff
// member on the given day without breaching any constraint that is already
// decidable at this point of a day-by-day plan.
//
// Parameters:
//   - shifts: the staff member's shifts for the whole period, indexed by
//     day offset; days at or after the current one hold ShiftUnknown
//   - day: zero-based offset of the day being assigned
//   - candidate: the shift under consideration
//   - morning, evening: head counts already assigned on this day
//
// The decision rules:
//   - a day off is refused when some fully-in-period 7-day window
//     containing the day would exceed the maximum days off
//   - a working shift is refused when the trailing window ending on this
//     day is fully inside the period and would fall short of the minimum
//     days off
//   - a Morning shift is refused directly after an Evening shift
//   - a working shift is refused when it would push the day's
//     Morning/Evening difference over the maximum
func (r RuleSet) CanAssign(
	shifts []schedulejob.Shift,
	day int,
	candidate schedulejob.Shift,
	morning, evening int,
) bool {
	if candidate == schedulejob.DayOff {
		return r.canTakeDayOff(shifts, day)
	}

	return r.canWork(shifts, day, candidate, morning, evening)
}

// canTakeDayOff checks the maximum days-off rule across every
// fully-in-period 7-day window containing the day.
func (r RuleSet) canTakeDayOff(shifts []schedulejob.Shift, day int) bool {
	lastStart := len(shifts) - daysPerWeek

	for start := day - daysPerWeek + 1; start <= day; start++ {
		if start < 0 || start > lastStart {
			continue
		}

		daysOff := 1 // the candidate itself
		for offset := start; offset < start+daysPerWeek; offset++ {
			if offset != day && shifts[offset] == schedulejob.DayOff {
				daysOff++
			}
		}

		if daysOff > r.maxDaysOff {
			return false
		}
	}

	return true
}

// canWork checks the minimum days-off, rest-after-evening and daily
// balance rules for a working shift candidate.
func (r RuleSet) canWork(
	shifts []schedulejob.Shift,
	day int,
	candidate schedulejob.Shift,
	morning, evening int,
) bool {
	// The trailing window [day-6, day] is fully decided once this day is
	// assigned. Working here must still leave the minimum days off in it.
	if day >= daysPerWeek-1 {
		daysOff := 0
		for offset := day - daysPerWeek + 1; offset < day; offset++ {
			if shifts[offset] == schedulejob.DayOff {
				daysOff++
			}
		}
		if daysOff < r.minDaysOff {
			return false
		}
	}

	if candidate == schedulejob.Morning && day > 0 && shifts[day-1] == schedulejob.Evening {
		return false
	}

	if candidate == schedulejob.Morning {
		morning++
	} else {
		evening++
	}

	return absInt(morning-evening) <= r.maxShiftDiff
}

// CheckPlan audits a complete plan against every constraint and returns
// all breaches found. An empty result means the plan fully satisfies the
// rule set.
//
// Parameters:
//   - period: the window the plan covers
//   - assignments: the complete plan, one assignment per staff member per day
//
// Violations are returned in no particular order. Unknown staff days
// (gaps in the plan) are not reported here; a well-formed plan covers
// every (staff member, day) pair.
func (r RuleSet) CheckPlan(period kernel.Period, assignments []schedulejob.Assignment) []Violation {
	byStaff := make(map[kernel.UUID][]schedulejob.Shift)
	staffOrder := make([]kernel.UUID, 0)

	morning := make([]int, kernel.PeriodLengthDays)
	evening := make([]int, kernel.PeriodLengthDays)

	for _, a := range assignments {
		day := int(a.Date().Sub(period.BeginDate()).Hours() / 24)
		if day < 0 || day >= kernel.PeriodLengthDays {
			continue
		}

		shifts, ok := byStaff[a.StaffID()]
		if !ok {
			shifts = make([]schedulejob.Shift, kernel.PeriodLengthDays)
			staffOrder = append(staffOrder, a.StaffID())
		}
		shifts[day] = a.Shift()
		byStaff[a.StaffID()] = shifts

		switch a.Shift() {
		case schedulejob.Morning:
			morning[day]++
		case schedulejob.Evening:
			evening[day]++
		}
	}

	var violations []Violation

	for _, staffID := range staffOrder {
		violations = append(violations, r.checkStaff(period, staffID, byStaff[staffID])...)
	}

	for day := range morning {
		if absInt(morning[day]-evening[day]) > r.maxShiftDiff {
			violations = append(violations, Violation{
				Rule: RuleDailyBalance,
				Date: period.Day(day),
				Message: fmt.Sprintf("%d morning and %d evening shifts differ by more than %d",
					morning[day], evening[day], r.maxShiftDiff),
			})
		}
	}

	return violations
}

// checkStaff audits one staff member's row of the plan for the window
// and rest rules.
func (r RuleSet) checkStaff(period kernel.Period, staffID kernel.UUID, shifts []schedulejob.Shift) []Violation {
	var violations []Violation
	id := staffID

	for start := 0; start+daysPerWeek <= len(shifts); start++ {
		daysOff := 0
		for offset := start; offset < start+daysPerWeek; offset++ {
			if shifts[offset] == schedulejob.DayOff {
				daysOff++
			}
		}

		if daysOff < r.minDaysOff {
			violations = append(violations, Violation{
				Rule:    RuleMinDaysOff,
				Date:    period.Day(start),
				StaffID: &id,
				Message: fmt.Sprintf("%d days off in the week, at least %d required", daysOff, r.minDaysOff),
			})
		}
		if daysOff > r.maxDaysOff {
			violations = append(violations, Violation{
				Rule:    RuleMaxDaysOff,
				Date:    period.Day(start),
				StaffID: &id,
				Message: fmt.Sprintf("%d days off in the week, at most %d allowed", daysOff, r.maxDaysOff),
			})
		}
	}

	for day := 1; day < len(shifts); day++ {
		if shifts[day] == schedulejob.Morning && shifts[day-1] == schedulejob.Evening {
			violations = append(violations, Violation{
				Rule:    RuleMorningAfterEvening,
				Date:    period.Day(day),
				StaffID: &id,
				Message: "morning shift directly after an evening shift",
			})
		}
	}

	return violations
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
