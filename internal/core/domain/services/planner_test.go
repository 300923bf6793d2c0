package services_test

import (
	"sort"
	"testing"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedulejob"
	"scheduling/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlanner(t *testing.T) services.Planner {
	t.Helper()
	planner, err := services.NewPlanner(defaultRules(t))
	require.NoError(t, err)
	return planner
}

func newStaff(count int) []kernel.UUID {
	staff := make([]kernel.UUID, count)
	for i := range staff {
		staff[i] = kernel.NewUUID()
	}
	return staff
}

func TestNewPlanner(t *testing.T) {
	t.Run("should reject an unconstructed rule set", func(t *testing.T) {
		var rules services.RuleSet

		_, err := services.NewPlanner(rules)

		require.Error(t, err)
	})
}

func TestPlanner_Plan(t *testing.T) {
	period := testPeriod(t)

	t.Run("should produce one assignment per staff member per day", func(t *testing.T) {
		planner := newPlanner(t)
		staff := newStaff(5)

		plan, err := planner.Plan(period, staff)

		require.NoError(t, err)
		assert.Len(t, plan, 5*kernel.PeriodLengthDays)

		type key struct {
			staff kernel.UUID
			day   string
		}
		seen := make(map[key]bool)
		for _, a := range plan {
			k := key{a.StaffID(), a.Date().Format("2006-01-02")}
			assert.False(t, seen[k], "duplicate assignment for %s on %s", a.StaffID(), a.Date())
			seen[k] = true
			assert.True(t, period.Contains(a.Date()))
		}
	})

	t.Run("should satisfy every rule for a typical group", func(t *testing.T) {
		planner := newPlanner(t)
		staff := newStaff(5)

		plan, err := planner.Plan(period, staff)

		require.NoError(t, err)
		assert.Empty(t, planner.Rules().CheckPlan(period, plan))
	})

	t.Run("should order assignments by day then staff id", func(t *testing.T) {
		planner := newPlanner(t)
		staff := newStaff(3)

		plan, err := planner.Plan(period, staff)
		require.NoError(t, err)

		for i := 1; i < len(plan); i++ {
			prev, curr := plan[i-1], plan[i]
			if prev.Date().Equal(curr.Date()) {
				assert.Less(t, prev.StaffID().String(), curr.StaffID().String())
			} else {
				assert.True(t, prev.Date().Before(curr.Date()))
			}
		}
	})

	t.Run("should be deterministic regardless of input order", func(t *testing.T) {
		planner := newPlanner(t)
		staff := newStaff(5)

		reversed := make([]kernel.UUID, len(staff))
		for i, id := range staff {
			reversed[len(staff)-1-i] = id
		}

		plan1, err := planner.Plan(period, staff)
		require.NoError(t, err)
		plan2, err := planner.Plan(period, reversed)
		require.NoError(t, err)

		require.Len(t, plan2, len(plan1))
		for i := range plan1 {
			assert.True(t, plan1[i].IsEqual(plan2[i]), "plans differ at index %d", i)
		}
	})

	t.Run("should collapse duplicate staff ids", func(t *testing.T) {
		planner := newPlanner(t)
		staff := newStaff(2)
		withDuplicates := append([]kernel.UUID{staff[0]}, staff...)

		plan, err := planner.Plan(period, withDuplicates)

		require.NoError(t, err)
		assert.Len(t, plan, 2*kernel.PeriodLengthDays)
	})

	t.Run("should return an empty plan for an empty staff group", func(t *testing.T) {
		planner := newPlanner(t)

		plan, err := planner.Plan(period, nil)

		require.NoError(t, err)
		assert.NotNil(t, plan)
		assert.Empty(t, plan)
	})

	t.Run("should reject an unconstructed period", func(t *testing.T) {
		planner := newPlanner(t)
		var period kernel.Period

		_, err := planner.Plan(period, newStaff(2))

		require.Error(t, err)
	})

	t.Run("should reject an invalid staff id", func(t *testing.T) {
		planner := newPlanner(t)
		var invalid kernel.UUID

		_, err := planner.Plan(period, []kernel.UUID{kernel.NewUUID(), invalid})

		require.Error(t, err)
	})

	t.Run("should alternate shifts and rest the whole group on the same day", func(t *testing.T) {
		planner := newPlanner(t)
		staff := newStaff(5)

		sorted := make([]string, len(staff))
		for i, id := range staff {
			sorted[i] = id.String()
		}
		sort.Strings(sorted)

		plan, err := planner.Plan(period, staff)
		require.NoError(t, err)

		// first day alternates morning and evening in staff id order
		firstDay := plan[:5]
		for i, a := range firstDay {
			assert.Equal(t, sorted[i], a.StaffID().String())
			if i%2 == 0 {
				assert.Equal(t, schedulejob.Morning, a.Shift())
			} else {
				assert.Equal(t, schedulejob.Evening, a.Shift())
			}
		}

		// the greedy strategy defers rest to the last day of each window,
		// so the whole group is off on days 6, 13, 20 and 27
		for _, day := range []int{6, 13, 20, 27} {
			for _, a := range plan[day*5 : day*5+5] {
				assert.Equal(t, schedulejob.DayOff, a.Shift(),
					"expected a day off on day %d", day)
			}
		}
	})

	t.Run("should keep a single staff member within the rules", func(t *testing.T) {
		planner := newPlanner(t)
		staff := newStaff(1)

		plan, err := planner.Plan(period, staff)

		require.NoError(t, err)
		assert.Len(t, plan, kernel.PeriodLengthDays)
		assert.Empty(t, planner.Rules().CheckPlan(period, plan))
	})

	t.Run("should fall back to days off under unsatisfiable rules", func(t *testing.T) {
		// one person can never balance morning against evening with a
		// zero difference, so every work shift is refused
		strict, err := services.NewRuleSet(1, 2, 0)
		require.NoError(t, err)
		planner, err := services.NewPlanner(strict)
		require.NoError(t, err)

		plan, err := planner.Plan(period, newStaff(1))
		require.NoError(t, err)

		for _, a := range plan {
			assert.Equal(t, schedulejob.DayOff, a.Shift())
		}

		violations := strict.CheckPlan(period, plan)
		assert.NotEmpty(t, violations)
		for _, v := range violations {
			assert.Equal(t, services.RuleMaxDaysOff, v.Rule)
		}
	})
}
