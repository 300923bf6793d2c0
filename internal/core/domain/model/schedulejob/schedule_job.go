package schedulejob

import (
	"errors"
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/pkg/errs"
)

var (
	// ErrScheduleJobIsNotConstructed is returned when a ScheduleJob instance was not
	// created through the NewScheduleJob or RestoreScheduleJob factory methods.
	ErrScheduleJobIsNotConstructed = errors.New("ScheduleJob must be created via NewScheduleJob constructor")
)

// ScheduleJob represents an asynchronous request to build a 28-day shift
// schedule for a staff group. It is the aggregate root that manages the job
// lifecycle from acceptance through processing to completion or failure.
//
// ScheduleJob follows these invariants:
//   - Must have valid job and staff group identifiers
//   - Must have a valid schedule period starting on a Monday
//   - Status transitions follow the Pending -> Processing -> Completed/Failed workflow
//   - An error message is present exactly when the job has Failed
//   - completedAt is set exactly once, when the job reaches a final status
//   - Can only be created through NewScheduleJob or RestoreScheduleJob
type ScheduleJob struct {
	// id is the unique identifier of the job
	id kernel.UUID

	// staffGroupID identifies the group whose members get scheduled
	staffGroupID kernel.UUID

	// period is the 28-day window the schedule covers
	period kernel.Period

	// status is the current state in the job lifecycle
	status Status

	// errorMessage explains the failure; empty unless status is Failed
	errorMessage string

	createdAt   time.Time
	updatedAt   time.Time
	completedAt *time.Time

	// isConstructed ensures the job was created via a factory method
	isConstructed bool
}

// NewScheduleJob creates a new ScheduleJob in Pending status. This is the
// entry point of the job lifecycle: a freshly accepted request that has not
// been picked up by a worker yet.
//
// Parameters:
//   - id: Unique identifier for the job (must be a valid UUID)
//   - staffGroupID: Identifier of the staff group to schedule
//   - period: The 28-day schedule window
//
// Returns:
//   - *ScheduleJob: The created job if all validations pass
//   - error: Validation error if any parameter is invalid
func NewScheduleJob(id kernel.UUID, staffGroupID kernel.UUID, period kernel.Period) (*ScheduleJob, error) {
	now := time.Now().UTC()
	job := &ScheduleJob{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		job.setID(id),
		job.setStaffGroupID(staffGroupID),
		job.setPeriod(period),
	); err != nil {
		return nil, err
	}

	return job, nil
}

// RestoreScheduleJob reconstructs a ScheduleJob aggregate from persistent
// storage. Unlike NewScheduleJob, which always starts jobs in Pending status,
// this constructor restores a job to its previously persisted state including
// status, timestamps and any failure message.
//
// Business Rules:
//   - IDs and period must be valid
//   - Status must be a valid lifecycle status
//   - An error message is allowed only for Failed jobs, and required for them
//
// Returns:
//   - *ScheduleJob: Restored job aggregate
//   - error: Validation error if any parameter is invalid or inconsistent
func RestoreScheduleJob(
	id kernel.UUID,
	staffGroupID kernel.UUID,
	period kernel.Period,
	status Status,
	errorMessage string,
	createdAt time.Time,
	updatedAt time.Time,
	completedAt *time.Time,
) (*ScheduleJob, error) {
	job := &ScheduleJob{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		completedAt:   completedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		job.setID(id),
		job.setStaffGroupID(staffGroupID),
		job.setPeriod(period),
		job.setStatus(status, errorMessage),
	); err != nil {
		return nil, err
	}

	return job, nil
}

// Validate ensures the ScheduleJob instance was properly constructed through
// a factory method. The zero value is invalid.
func (j *ScheduleJob) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrScheduleJobIsNotConstructed
	}

	return nil
}

// IsEqual compares two jobs by their unique identifiers.
func (j *ScheduleJob) IsEqual(other *ScheduleJob) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *ScheduleJob) ID() kernel.UUID {
	return j.id
}

// StaffGroupID returns the identifier of the staff group being scheduled.
func (j *ScheduleJob) StaffGroupID() kernel.UUID {
	return j.staffGroupID
}

// Period returns the 28-day window the schedule covers.
func (j *ScheduleJob) Period() kernel.Period {
	return j.period
}

// Status returns the current status of the job.
func (j *ScheduleJob) Status() Status {
	return j.status
}

// ErrorMessage returns the failure reason.
// It is empty unless the job has Failed.
func (j *ScheduleJob) ErrorMessage() string {
	return j.errorMessage
}

// CreatedAt returns when the job was accepted.
func (j *ScheduleJob) CreatedAt() time.Time {
	return j.createdAt
}

// UpdatedAt returns when the job last changed state.
func (j *ScheduleJob) UpdatedAt() time.Time {
	return j.updatedAt
}

// CompletedAt returns when the job reached a final status.
// Returns nil while the job is still Pending or Processing.
func (j *ScheduleJob) CompletedAt() *time.Time {
	return j.completedAt
}

// Process marks the job as picked up by a worker.
//
// This method enforces the following business rules:
//   - The job must be in Pending status
//
// Returns:
//   - nil on successful transition to Processing
//   - error if the transition is not allowed from the current status
func (j *ScheduleJob) Process() error {
	newStatus, err := j.status.Process()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.touch()
	return nil
}

// Complete marks the job as successfully finished.
//
// This method enforces the following business rules:
//   - The job must be in Processing status
//   - Completed is a final state with no further transitions
//
// After successful completion CompletedAt() returns the completion time.
func (j *ScheduleJob) Complete() error {
	newStatus, err := j.status.Complete()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.touch()
	j.completedAt = &j.updatedAt
	return nil
}

// Fail marks the job as failed with the given reason.
//
// This method enforces the following business rules:
//   - The job must be in Processing status
//   - The message must not be empty
//   - Failed is a final state with no further transitions
//
// After the transition ErrorMessage() returns the reason and
// CompletedAt() returns the failure time.
func (j *ScheduleJob) Fail(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("errorMessage")
	}

	newStatus, err := j.status.Fail()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.errorMessage = message
	j.touch()
	j.completedAt = &j.updatedAt
	return nil
}

// touch stamps the aggregate as modified now.
func (j *ScheduleJob) touch() {
	j.updatedAt = time.Now().UTC()
}

// setID validates and sets the job's unique identifier.
// This is a private method used only during construction.
func (j *ScheduleJob) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

// setStaffGroupID validates and sets the staff group identifier.
// This is a private method used only during construction.
func (j *ScheduleJob) setStaffGroupID(staffGroupID kernel.UUID) error {
	if err := staffGroupID.Validate(); err != nil {
		return err
	}
	j.staffGroupID = staffGroupID
	return nil
}

// setPeriod validates and sets the schedule period.
// This is a private method used only during construction.
func (j *ScheduleJob) setPeriod(period kernel.Period) error {
	if err := period.Validate(); err != nil {
		return err
	}
	j.period = period
	return nil
}

// setStatus validates and sets the persisted status together with its
// failure message. This is a private method used only during restoration.
func (j *ScheduleJob) setStatus(status Status, errorMessage string) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveError(errorMessage != ""); err != nil {
		return err
	}
	j.status = status
	j.errorMessage = errorMessage
	return nil
}
