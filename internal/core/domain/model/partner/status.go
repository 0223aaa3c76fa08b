package partner

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the availability state of a delivery partner.
// Inactive partners are never considered for dispatch but keep their
// history and metrics.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusActive marks a partner as available for dispatch.
	StatusActive

	// StatusInactive marks a partner as unavailable for dispatch.
	StatusInactive
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		StatusActive:   "active",
		StatusInactive: "inactive",
	}
}

// StatusFromString parses a Status from its string representation.
func StatusFromString(s string) (Status, error) {
	switch s {
	case "active":
		return StatusActive, nil
	case "inactive":
		return StatusInactive, nil
	default:
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%q is not a valid partner status", s),
		)
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != StatusActive && s != StatusInactive {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid partner status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
