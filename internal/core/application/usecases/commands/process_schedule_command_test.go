package commands_test

import (
	"testing"

	"scheduling/internal/core/application/usecases/commands"
	"scheduling/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcessScheduleCommand(t *testing.T) {
	t.Run("should create command with valid job id", func(t *testing.T) {
		jobID := kernel.NewUUID()

		cmd, err := commands.NewProcessScheduleCommand(jobID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, jobID, cmd.JobID())
	})

	t.Run("should reject invalid job id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewProcessScheduleCommand(invalidID)

		require.Error(t, err)
	})
}

func TestProcessScheduleCommand_Validate(t *testing.T) {
	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.ProcessScheduleCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrProcessScheduleCommandIsNotConstructed, err)
	})
}
