package schedulejob

import (
	"fmt"

	"scheduling/internal/pkg/errs"
)

// Status represents the lifecycle state of a schedule job.
// It implements a state machine with defined transitions so jobs
// always progress through the correct workflow.
//
// State transitions:
//
//	Pending ──> Processing ──┬──> Completed
//	                         │
//	                         └──> Failed
//
// Completed and Failed are terminal states with no further
// transitions allowed.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a job is accepted.
	// Jobs in this status are waiting for a worker to pick them up.
	Pending

	// Processing indicates a worker has started building the schedule.
	Processing

	// Completed indicates the schedule was generated and stored.
	// This is a final state.
	Completed

	// Failed indicates the job could not produce a schedule.
	// This is a final state; the failure reason lives on the aggregate.
	Failed
)

// getStatusStrings returns a map of Status values to their wire-format
// string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Processing: "PROCESSING",
		Completed:  "COMPLETED",
		Failed:     "FAILED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		Processing: "PROCESSING",
		Completed:  "COMPLETED",
		Failed:     "FAILED",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, Completed, Failed.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-format name of the status, e.g. "PENDING".
// It implements fmt.Stringer and is safe to call on any Status value;
// invalid values yield "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ValidateCanHaveError validates the consistency between job status and
// the presence of a failure message.
//
// Business Rules:
//   - Failed jobs must carry an error message
//   - jobs in any other status must not carry one
//
// Parameters:
//   - hasError: whether the job carries a failure message
//
// Returns:
//   - error: validation error if status and message presence are inconsistent
func (s Status) ValidateCanHaveError(hasError bool) error {
	if hasError && s != Failed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have an error message", s.String()),
		)
	}

	if !hasError && s == Failed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no error message", s.String()),
		)
	}

	return nil
}

// IsFinal reports whether the status is terminal.
// Completed and Failed jobs never transition again.
func (s Status) IsFinal() bool {
	return s == Completed || s == Failed
}

// Process transitions the status to Processing.
//
// Valid transitions:
//   - Pending -> Processing (worker picked the job up)
//
// Returns:
//   - (Processing, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Process() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start processing", s.String()),
		)
	}

	return Processing, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Processing -> Completed (schedule generated and stored)
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Complete() (Status, error) {
	if s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Fail transitions the status to Failed.
//
// Valid transitions:
//   - Processing -> Failed (schedule generation was aborted)
//
// Returns:
//   - (Failed, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Fail() (Status, error) {
	if s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to fail", s.String()),
		)
	}

	return Failed, nil
}
