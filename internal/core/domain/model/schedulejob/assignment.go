package schedulejob

import (
	"errors"
	"time"

	"scheduling/internal/core/domain/model/kernel"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment instance
// was not created through the NewAssignment factory method.
var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

// Assignment is a value object binding one staff member to one shift on
// one calendar day. A complete 28-day schedule is the set of assignments
// covering every (staff member, day) pair exactly once.
//
// Assignments are immutable after construction and compare by their
// full value, not by identity.
type Assignment struct {
	staffID kernel.UUID
	date    time.Time
	shift   Shift

	isConstructed bool
}

// NewAssignment creates a validated Assignment.
//
// The date is truncated to midnight UTC so that assignments for the same
// calendar day always compare equal regardless of the caller's clock.
//
// Returns:
//   - Assignment: the created value object if all validations pass
//   - error: validation error if the staff ID or shift is invalid
func NewAssignment(staffID kernel.UUID, date time.Time, shift Shift) (Assignment, error) {
	if err := staffID.Validate(); err != nil {
		return Assignment{}, err
	}
	if err := shift.Validate(); err != nil {
		return Assignment{}, err
	}

	d := date.UTC()
	return Assignment{
		staffID:       staffID,
		date:          time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC),
		shift:         shift,
		isConstructed: true,
	}, nil
}

// Validate ensures the Assignment was constructed via NewAssignment.
// The zero value is invalid.
func (a Assignment) Validate() error {
	if !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// StaffID returns the assigned staff member's identifier.
func (a Assignment) StaffID() kernel.UUID {
	return a.staffID
}

// Date returns the calendar day of the assignment at midnight UTC.
func (a Assignment) Date() time.Time {
	return a.date
}

// Shift returns the kind of duty assigned for the day.
func (a Assignment) Shift() Shift {
	return a.shift
}

// IsEqual compares two assignments by staff member, day and shift.
func (a Assignment) IsEqual(other Assignment) bool {
	return a.staffID.IsEqual(other.staffID) && a.date.Equal(other.date) && a.shift == other.shift
}
