package assignment

import (
	"dispatch/internal/pkg/errs"
)

// Status is the outcome of a recorded dispatch attempt.
type Status struct {
	name string
}

var (
	// StatusSuccess marks an attempt that assigned the order to a partner.
	StatusSuccess = Status{name: "success"}
	// StatusFailed marks an attempt that left the order pending.
	StatusFailed = Status{name: "failed"}
)

// StatusFromString converts a string to a Status.
func StatusFromString(name string) (Status, error) {
	switch name {
	case StatusSuccess.name:
		return StatusSuccess, nil
	case StatusFailed.name:
		return StatusFailed, nil
	default:
		return Status{}, errs.NewValueIsInvalidError("assignment status")
	}
}

// IsEqual compares two statuses.
func (s Status) IsEqual(other Status) bool {
	return s.name == other.name
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return s.name
}

// Validate checks that the status is one of the defined outcomes.
func (s Status) Validate() error {
	if _, err := StatusFromString(s.name); err != nil {
		return err
	}
	return nil
}
