package commands

import (
	"errors"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/pkg/guard"
)

var ErrProcessScheduleCommandIsNotConstructed = errors.New(
	"ProcessScheduleCommand must be created via NewProcessScheduleCommand constructor",
)

// ProcessScheduleCommand represents a request to process one pending
// schedule job: resolve the staff group, build the plan and store it.
// Workers issue this command for every job ID taken off the queue.
type ProcessScheduleCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProcessScheduleCommand creates a command to process the given job.
func NewProcessScheduleCommand(jobID kernel.UUID) (ProcessScheduleCommand, error) {
	command := ProcessScheduleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setJobID(jobID); err != nil {
		return ProcessScheduleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessScheduleCommandIsNotConstructed if validation fails.
func (c ProcessScheduleCommand) Validate() error {
	return c.guard.Validate(ErrProcessScheduleCommandIsNotConstructed)
}

// JobID returns the identifier of the job to process.
func (c ProcessScheduleCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c *ProcessScheduleCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}
