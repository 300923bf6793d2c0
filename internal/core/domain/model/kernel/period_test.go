package kernel_test

import (
	"testing"
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-01-15 is a Monday.
var monday = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

func TestNewPeriod(t *testing.T) {
	t.Run("should create period from a Monday", func(t *testing.T) {
		period, err := kernel.NewPeriod(monday)

		require.NoError(t, err)
		require.NoError(t, period.Validate())
		assert.Equal(t, monday, period.BeginDate())
		assert.Equal(t, monday.AddDate(0, 0, 27), period.EndDate())
		assert.Equal(t, time.Sunday, period.EndDate().Weekday())
	})

	t.Run("should truncate time of day and location", func(t *testing.T) {
		loc, err := time.LoadLocation("Europe/Berlin")
		require.NoError(t, err)
		noonInBerlin := time.Date(2024, 1, 15, 12, 30, 45, 0, loc)

		period, err := kernel.NewPeriod(noonInBerlin)

		require.NoError(t, err)
		assert.Equal(t, monday, period.BeginDate())
	})

	t.Run("should reject non-Monday begin dates", func(t *testing.T) {
		for offset := 1; offset < 7; offset++ {
			day := monday.AddDate(0, 0, offset)

			_, err := kernel.NewPeriod(day)

			require.Error(t, err, "weekday %s must be rejected", day.Weekday())
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "Monday")
		}
	})
}

func TestPeriod_Days(t *testing.T) {
	period, err := kernel.NewPeriod(monday)
	require.NoError(t, err)

	days := period.Days()

	require.Len(t, days, kernel.PeriodLengthDays)
	assert.Equal(t, monday, days[0])
	assert.Equal(t, period.EndDate(), days[27])

	for i := 1; i < len(days); i++ {
		assert.Equal(t, days[i-1].AddDate(0, 0, 1), days[i], "days must be consecutive")
	}
}

func TestPeriod_Day(t *testing.T) {
	period, err := kernel.NewPeriod(monday)
	require.NoError(t, err)

	assert.Equal(t, monday, period.Day(0))
	assert.Equal(t, monday.AddDate(0, 0, 7), period.Day(7))
	assert.Equal(t, period.EndDate(), period.Day(27))
}

func TestPeriod_Contains(t *testing.T) {
	period, err := kernel.NewPeriod(monday)
	require.NoError(t, err)

	assert.True(t, period.Contains(monday))
	assert.True(t, period.Contains(period.EndDate()))
	assert.True(t, period.Contains(monday.AddDate(0, 0, 13)))
	assert.False(t, period.Contains(monday.AddDate(0, 0, -1)))
	assert.False(t, period.Contains(monday.AddDate(0, 0, 28)))
}

func TestPeriod_Validate(t *testing.T) {
	t.Run("should reject zero value period", func(t *testing.T) {
		var period kernel.Period

		err := period.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPeriodIsNotConstructed, err)
	})
}

func TestPeriod_String(t *testing.T) {
	period, err := kernel.NewPeriod(monday)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-15..2024-02-11", period.String())
}
