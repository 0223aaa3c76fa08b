package services

import (
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
)

// EligibilityFilter is a domain service that narrows a partner pool down to
// the candidates able to take a given order right now.
//
// A partner is eligible when all of the following hold:
//   - the partner is active
//   - the partner's current load is below the concurrent cap
//   - the partner covers the order's delivery area
//   - the current time of day falls within the partner's shift window
//
// The filter is pure: it never mutates the order or the partners.
type EligibilityFilter struct{}

// NewEligibilityFilter creates a new EligibilityFilter instance.
func NewEligibilityFilter() EligibilityFilter {
	return EligibilityFilter{}
}

// EligiblePartners returns the subset of the pool able to take the order at
// the given moment, preserving the pool's order.
//
// Returns a validation error if the order or any pooled partner was not
// properly constructed.
func (f EligibilityFilter) EligiblePartners(
	o *order.Order,
	pool []*partner.Partner,
	now time.Time,
) ([]*partner.Partner, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	var eligible []*partner.Partner
	for _, p := range pool {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if p.CanTakeOrder(o.Area(), now) {
			eligible = append(eligible, p)
		}
	}

	return eligible, nil
}

// Diagnose classifies why no partner in the pool was eligible for the order.
//
// When every active partner fails exactly one eligibility predicate and it is
// the same predicate across the pool, the failure gets the specific reason
// for that predicate. Any mixed or compound failure, an empty pool included,
// is classified as ReasonNoEligiblePartner.
func (f EligibilityFilter) Diagnose(
	o *order.Order,
	pool []*partner.Partner,
	now time.Time,
) assignment.FailureReason {
	var shared assignment.FailureReason
	seenActive := false

	for _, p := range pool {
		if !p.IsActive() {
			continue
		}

		failed := failedPredicates(p, o.Area(), now)
		if len(failed) != 1 {
			return assignment.ReasonNoEligiblePartner
		}

		if !seenActive {
			shared = failed[0]
			seenActive = true
			continue
		}

		if !shared.IsEqual(failed[0]) {
			return assignment.ReasonNoEligiblePartner
		}
	}

	if !seenActive {
		return assignment.ReasonNoEligiblePartner
	}

	return shared
}

// failedPredicates returns the specific reasons for each eligibility
// predicate the partner fails for the given area and moment.
func failedPredicates(p *partner.Partner, area string, now time.Time) []assignment.FailureReason {
	var failed []assignment.FailureReason

	if !p.HasCapacity() {
		failed = append(failed, assignment.ReasonCapacityExceeded)
	}
	if !p.CoversArea(area) {
		failed = append(failed, assignment.ReasonAreaMismatch)
	}
	if !p.IsOnShift(now) {
		failed = append(failed, assignment.ReasonShiftMismatch)
	}

	return failed
}
