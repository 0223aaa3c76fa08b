package assignment

import (
	"dispatch/internal/pkg/errs"
)

// FailureReason classifies why a dispatch attempt could not place an order.
// The set of reasons is closed; ledger entries never carry free-form text.
type FailureReason struct {
	name string
}

var (
	// ReasonNoEligiblePartner covers the general case where no single
	// predicate explains the failure across the candidate pool.
	ReasonNoEligiblePartner = FailureReason{name: "NO_ELIGIBLE_PARTNER"}
	// ReasonCapacityExceeded means every otherwise eligible partner was at
	// the concurrent load cap.
	ReasonCapacityExceeded = FailureReason{name: "CAPACITY_EXCEEDED"}
	// ReasonAreaMismatch means no partner covers the order's delivery area.
	ReasonAreaMismatch = FailureReason{name: "AREA_MISMATCH"}
	// ReasonShiftMismatch means every covering partner was outside their
	// shift window at dispatch time.
	ReasonShiftMismatch = FailureReason{name: "SHIFT_MISMATCH"}
)

// FailureReasons returns all valid failure reasons.
func FailureReasons() []FailureReason {
	return []FailureReason{
		ReasonNoEligiblePartner,
		ReasonCapacityExceeded,
		ReasonAreaMismatch,
		ReasonShiftMismatch,
	}
}

// FailureReasonFromString converts a string to a FailureReason.
// Returns an error for strings outside the closed reason set.
func FailureReasonFromString(name string) (FailureReason, error) {
	for _, reason := range FailureReasons() {
		if reason.name == name {
			return reason, nil
		}
	}
	return FailureReason{}, errs.NewValueIsInvalidError("failure reason")
}

// IsEqual compares two failure reasons.
func (r FailureReason) IsEqual(other FailureReason) bool {
	return r.name == other.name
}

// String returns the wire representation of the failure reason.
func (r FailureReason) String() string {
	return r.name
}

// Validate checks that the reason belongs to the closed set.
func (r FailureReason) Validate() error {
	if _, err := FailureReasonFromString(r.name); err != nil {
		return err
	}
	return nil
}
