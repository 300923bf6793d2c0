package commands

import (
	"errors"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/pkg/guard"
)

var ErrSubmitScheduleCommandIsNotConstructed = errors.New(
	"SubmitScheduleCommand must be created via NewSubmitScheduleCommand constructor",
)

// SubmitScheduleCommand represents a request to accept a new schedule job.
// Encapsulates the job identity, the staff group to schedule and the
// 28-day period the schedule should cover.
//
// Example:
//
//	jobID := kernel.NewUUID()
//	cmd, err := NewSubmitScheduleCommand(jobID, groupID, period)
//	if err != nil {
//	    return fmt.Errorf("invalid schedule request: %w", err)
//	}
//
//	handler := NewSubmitScheduleCommandHandler(uowFactory, queue)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to accept schedule job: %w", err)
//	}
type SubmitScheduleCommand struct { //nolint:recvcheck //using for validation
	jobID        kernel.UUID
	staffGroupID kernel.UUID
	period       kernel.Period

	guard guard.ConstructorGuard
}

// NewSubmitScheduleCommand creates a command to accept a new schedule job.
// Validates that both identifiers and the period are valid.
func NewSubmitScheduleCommand(
	jobID kernel.UUID,
	staffGroupID kernel.UUID,
	period kernel.Period,
) (SubmitScheduleCommand, error) {
	command := SubmitScheduleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setJobID(jobID),
		command.setStaffGroupID(staffGroupID),
		command.setPeriod(period),
	); err != nil {
		return SubmitScheduleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitScheduleCommandIsNotConstructed if validation fails.
func (c SubmitScheduleCommand) Validate() error {
	return c.guard.Validate(ErrSubmitScheduleCommandIsNotConstructed)
}

// JobID returns the unique identifier for the new job.
func (c SubmitScheduleCommand) JobID() kernel.UUID {
	return c.jobID
}

// StaffGroupID returns the identifier of the staff group to schedule.
func (c SubmitScheduleCommand) StaffGroupID() kernel.UUID {
	return c.staffGroupID
}

// Period returns the 28-day window the schedule should cover.
func (c SubmitScheduleCommand) Period() kernel.Period {
	return c.period
}

func (c *SubmitScheduleCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *SubmitScheduleCommand) setStaffGroupID(staffGroupID kernel.UUID) error {
	if err := staffGroupID.Validate(); err != nil {
		return err
	}

	c.staffGroupID = staffGroupID
	return nil
}

func (c *SubmitScheduleCommand) setPeriod(period kernel.Period) error {
	if err := period.Validate(); err != nil {
		return err
	}

	c.period = period
	return nil
}
