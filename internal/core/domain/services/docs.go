// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the dispatch system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - EligibilityFilter: Narrows the partner pool to dispatchable candidates and classifies failures
//   - MatchingPolicy: Picks the winning candidate deterministically
//   - OrderDispatcher: Combines filtering and matching into the atomic assignment workflow
//   - MetricsAggregator: Computes aggregate dispatch figures from ledger entries
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
