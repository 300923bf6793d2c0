package commands_test

import (
	"testing"
	"time"

	"scheduling/internal/core/application/usecases/commands"
	"scheduling/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPeriod(t *testing.T) kernel.Period {
	t.Helper()
	period, err := kernel.NewPeriod(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return period
}

func TestNewSubmitScheduleCommand(t *testing.T) {
	t.Run("should create command with valid parameters", func(t *testing.T) {
		jobID := kernel.NewUUID()
		groupID := kernel.NewUUID()
		period := validPeriod(t)

		cmd, err := commands.NewSubmitScheduleCommand(jobID, groupID, period)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, jobID, cmd.JobID())
		assert.Equal(t, groupID, cmd.StaffGroupID())
		assert.True(t, period.IsEqual(cmd.Period()))
	})

	t.Run("should reject invalid job id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewSubmitScheduleCommand(invalidID, kernel.NewUUID(), validPeriod(t))

		require.Error(t, err)
	})

	t.Run("should reject invalid staff group id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewSubmitScheduleCommand(kernel.NewUUID(), invalidID, validPeriod(t))

		require.Error(t, err)
	})

	t.Run("should reject unconstructed period", func(t *testing.T) {
		var period kernel.Period

		_, err := commands.NewSubmitScheduleCommand(kernel.NewUUID(), kernel.NewUUID(), period)

		require.Error(t, err)
	})
}

func TestSubmitScheduleCommand_Validate(t *testing.T) {
	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.SubmitScheduleCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrSubmitScheduleCommandIsNotConstructed, err)
	})
}
