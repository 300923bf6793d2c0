package schedulejob

import (
	"fmt"

	"scheduling/internal/pkg/errs"
)

// Shift represents the kind of duty assigned to a staff member on a
// single calendar day. A day is either one of the two working shifts
// or an explicit day off; there is no unassigned state in a finished
// schedule.
type Shift int

const (
	// ShiftUnknown represents an invalid or undefined shift.
	// This value (0) helps catch uninitialized Shift values.
	ShiftUnknown Shift = iota

	// Morning is the first working shift of the day.
	Morning

	// Evening is the second working shift of the day.
	// A staff member who worked an Evening shift must not be assigned
	// a Morning shift on the following day.
	Evening

	// DayOff marks a rest day.
	DayOff
)

// getShiftStrings returns a map of Shift values to their wire-format
// string representations.
func getShiftStrings() map[Shift]string {
	return map[Shift]string{
		ShiftUnknown: "UNKNOWN",
		Morning:      "MORNING",
		Evening:      "EVENING",
		DayOff:       "DAY_OFF",
	}
}

// getValidShiftStrings returns a map of only valid Shift values.
func getValidShiftStrings() map[Shift]string {
	//nolint:exhaustive // ShiftUnknown is intentionally excluded as it's invalid
	return map[Shift]string{
		Morning: "MORNING",
		Evening: "EVENING",
		DayOff:  "DAY_OFF",
	}
}

// ShiftFromString parses a wire-format shift name ("MORNING",
// "EVENING", "DAY_OFF") into a Shift value.
//
// Returns:
//   - (Shift, nil) for a recognized name
//   - (ShiftUnknown, error) otherwise
func ShiftFromString(value string) (Shift, error) {
	for shift, str := range getValidShiftStrings() {
		if str == value {
			return shift, nil
		}
	}

	return ShiftUnknown, errs.NewValueIsInvalidErrorWithCause(
		"shift is invalid",
		fmt.Errorf("%q is not a valid shift", value),
	)
}

// Validate checks if the Shift value is valid.
//
// Valid shifts are: Morning, Evening, DayOff.
// ShiftUnknown (0) and any other values are invalid.
func (s Shift) Validate() error {
	if _, ok := getValidShiftStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("shift is invalid", fmt.Errorf("%d is not a valid shift", s))
	}
	return nil
}

// String returns the wire-format name of the shift, e.g. "DAY_OFF".
// It implements fmt.Stringer and is safe to call on any Shift value;
// invalid values yield "UNKNOWN".
func (s Shift) String() string {
	if str, ok := getShiftStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsWork reports whether the shift is a working shift (Morning or Evening)
// as opposed to a day off.
func (s Shift) IsWork() bool {
	return s == Morning || s == Evening
}
