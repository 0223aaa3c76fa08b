package services

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
)

// ErrNoEligiblePartner is returned when no partner in the pool can take the
// order. Callers use Diagnose to classify the failure for the ledger.
var ErrNoEligiblePartner = errors.New("no eligible partner for order")

// OrderDispatcher is a domain service responsible for finding and assigning
// the best available partner for a pending delivery order.
//
// Key responsibilities:
//   - Validating orders before dispatch
//   - Filtering the partner pool down to eligible candidates
//   - Selecting the winning candidate under the matching policy
//   - Executing the atomic order assignment workflow
//
// Business rules:
//   - Only pending orders are dispatched
//   - The selected partner's load counter and the order's assignee move together
//   - Selection is deterministic for a given pool state
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher()
//	assigned, err := dispatcher.Dispatch(o, partners, time.Now())
//	if errors.Is(err, services.ErrNoEligiblePartner) {
//	    reason := dispatcher.Diagnose(o, partners, time.Now())
//	    // record a failure entry with the reason
//	    return
//	}
//	if err != nil {
//	    // Handle dispatch failure
//	    return
//	}
//	// Order successfully assigned to assigned
type OrderDispatcher struct {
	filter EligibilityFilter
	policy MatchingPolicy
}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{
		filter: NewEligibilityFilter(),
		policy: NewMatchingPolicy(),
	}
}

// Dispatch finds the best partner for the order and executes the assignment.
//
// On success the order moves to assigned status with the partner as its
// assignee, and the partner's load counter takes one slot. Returns
// ErrNoEligiblePartner when the pool holds no eligible candidate; the order
// and the pool are left untouched in that case.
func (d OrderDispatcher) Dispatch(
	o *order.Order,
	pool []*partner.Partner,
	now time.Time,
) (*partner.Partner, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := o.Status().ValidateAssign(); err != nil {
		return nil, err
	}

	eligible, err := d.filter.EligiblePartners(o, pool, now)
	if err != nil {
		return nil, err
	}

	best := d.policy.SelectBest(eligible)
	if best == nil {
		return nil, ErrNoEligiblePartner
	}

	if err = best.TakeOrder(); err != nil {
		return nil, err
	}

	if err = o.Assign(best.ID(), now); err != nil {
		return nil, err
	}

	return best, nil
}

// Diagnose classifies why the pool held no eligible partner for the order.
func (d OrderDispatcher) Diagnose(
	o *order.Order,
	pool []*partner.Partner,
	now time.Time,
) assignment.FailureReason {
	return d.filter.Diagnose(o, pool, now)
}
