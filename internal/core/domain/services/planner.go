package services

import (
	"sort"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedulejob"
)

// Planner is a domain service that builds a complete shift plan for a
// staff group over a 28-day period using a greedy day-by-day strategy.
//
// Key properties:
//   - Deterministic: the same staff set and period always yield the same
//     plan. Staff members are processed in lexicographic ID order.
//   - Total: every staff member receives exactly one shift per day; an
//     empty staff set yields an empty plan.
//   - Best effort: the planner never fails. When no shift satisfies the
//     rule set on a given day it falls back to a day off, and the
//     resulting breach surfaces through RuleSet.CheckPlan.
type Planner struct {
	rules RuleSet
}

// NewPlanner creates a Planner using the given rule set.
//
// Returns:
//   - Planner: a planner ready to build schedules
//   - error: validation error if the rule set is not constructed
func NewPlanner(rules RuleSet) (Planner, error) {
	if err := rules.Validate(); err != nil {
		return Planner{}, err
	}

	return Planner{rules: rules}, nil
}

// Rules returns the rule set the planner schedules against.
func (p Planner) Rules() RuleSet {
	return p.rules
}

// Plan builds the complete shift plan for the given staff members over
// the period.
//
// The plan is built day by day. On each day every staff member, visited
// in lexicographic ID order, is given the first shift out of Morning,
// Evening, DayOff that the rule set allows against the plan built so
// far. If none is allowed the staff member gets a day off regardless;
// such forced days off are the only way a finished plan can breach the
// rules.
//
// Parameters:
//   - period: the 28-day window to schedule
//   - staffIDs: the members to schedule; duplicates are collapsed
//
// Returns:
//   - []schedulejob.Assignment: one assignment per staff member per day,
//     ordered by day first, then by staff ID
//   - error: validation error if the period or any staff ID is invalid
func (p Planner) Plan(period kernel.Period, staffIDs []kernel.UUID) ([]schedulejob.Assignment, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}
	for _, id := range staffIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
	}

	staff := dedupeAndSort(staffIDs)
	if len(staff) == 0 {
		return []schedulejob.Assignment{}, nil
	}

	days := period.Days()
	shiftsByStaff := make([][]schedulejob.Shift, len(staff))
	for i := range staff {
		shiftsByStaff[i] = make([]schedulejob.Shift, len(days))
	}

	assignments := make([]schedulejob.Assignment, 0, len(staff)*len(days))

	for day := range days {
		morning, evening := 0, 0

		for i, staffID := range staff {
			shift := p.pickShift(shiftsByStaff[i], day, morning, evening)
			shiftsByStaff[i][day] = shift

			switch shift {
			case schedulejob.Morning:
				morning++
			case schedulejob.Evening:
				evening++
			}

			assignment, err := schedulejob.NewAssignment(staffID, days[day], shift)
			if err != nil {
				return nil, err
			}
			assignments = append(assignments, assignment)
		}
	}

	return assignments, nil
}

// pickShift returns the first allowed shift for the staff member on the
// day, falling back to a day off when nothing is allowed.
func (p Planner) pickShift(shifts []schedulejob.Shift, day, morning, evening int) schedulejob.Shift {
	for _, candidate := range []schedulejob.Shift{schedulejob.Morning, schedulejob.Evening, schedulejob.DayOff} {
		if p.rules.CanAssign(shifts, day, candidate, morning, evening) {
			return candidate
		}
	}

	return schedulejob.DayOff
}

// dedupeAndSort returns the unique staff IDs in lexicographic order.
func dedupeAndSort(staffIDs []kernel.UUID) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(staffIDs))
	unique := make([]kernel.UUID, 0, len(staffIDs))

	for _, id := range staffIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	sort.Slice(unique, func(i, j int) bool {
		return unique[i].String() < unique[j].String()
	})

	return unique
}
