package services

import (
	"dispatch/internal/core/domain/model/partner"
)

// MatchingPolicy is a domain service that picks the best partner from a set
// of eligible candidates.
//
// Selection criteria, applied in order:
//   - lowest current load, spreading work across the fleet
//   - highest rating among equally loaded partners
//   - ascending partner identifier as the final tie-break
//
// The identifier tie-break makes selection fully deterministic: the same
// candidate set always yields the same partner regardless of input order.
// The policy is pure and never mutates the candidates.
type MatchingPolicy struct{}

// NewMatchingPolicy creates a new MatchingPolicy instance.
func NewMatchingPolicy() MatchingPolicy {
	return MatchingPolicy{}
}

// SelectBest returns the winning candidate, or nil for an empty set.
func (m MatchingPolicy) SelectBest(candidates []*partner.Partner) *partner.Partner {
	var best *partner.Partner

	for _, candidate := range candidates {
		if best == nil || m.ranksHigher(candidate, best) {
			best = candidate
		}
	}

	return best
}

// ranksHigher reports whether a should win over b under the policy.
func (m MatchingPolicy) ranksHigher(a, b *partner.Partner) bool {
	if a.CurrentLoad() != b.CurrentLoad() {
		return a.CurrentLoad() < b.CurrentLoad()
	}

	if a.Performance().Rating() != b.Performance().Rating() {
		return a.Performance().Rating() > b.Performance().Rating()
	}

	return a.ID().Less(b.ID())
}
