package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> Picked ──> Delivered
//
// Transitions are strictly monotonic: an order never regresses to an
// earlier status. The Pending -> Assigned transition belongs exclusively
// to the dispatch run; all later transitions belong to the external
// status-update operation, which may skip Picked and deliver directly.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to be dispatched to a partner.
	Pending

	// Assigned indicates the order has been dispatched to a delivery partner.
	Assigned

	// Picked indicates the assigned partner has picked the order up.
	Picked

	// Delivered indicates the order has reached the customer.
	// This is a final state; it releases the partner's load slot.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// The lowercase forms are the wire and storage format.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Assigned:  "assigned",
		Picked:    "picked",
		Delivered: "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Assigned:  "assigned",
		Picked:    "picked",
		Delivered: "delivered",
	}
}

// StatusFromString parses a Status from its string representation.
// Returns an error for strings that do not name a valid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Assigned, Picked, Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status is a final state with no
// further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// ValidateAssign checks if the status allows dispatch assignment.
// Only Pending orders may be assigned; an already-assigned order being
// assigned again would double-book it.
func (s Status) ValidateAssign() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveAssignee validates the consistency between order status and
// partner assignment: assignedTo is set if and only if the order has been
// dispatched (Assigned, Picked, or Delivered).
func (s Status) ValidateCanHaveAssignee(assigned bool) error {
	if assigned && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have an assigned partner", s.String()),
		)
	}

	if !assigned && s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no assigned partner", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned (dispatch)
//
// Returns:
//   - (Assigned, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return Assigned, nil
}

// ProgressTo transitions the status forward along the delivery workflow.
// This is the transition used by the external status-update operation.
//
// Valid transitions:
//   - Assigned -> Picked
//   - Assigned -> Delivered (forward skip)
//   - Picked   -> Delivered
//
// Invalid transitions:
//   - any regression to an earlier status
//   - leaving Pending (dispatch owns Pending -> Assigned)
//   - leaving Delivered (final state)
func (s Status) ProgressTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if s != Assigned && s != Picked {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to progress from", s.String()),
		)
	}

	if next <= s {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot regress from %s to %s", s.String(), next.String()),
		)
	}

	return next, nil
}
