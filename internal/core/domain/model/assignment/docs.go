// Package assignment provides the append-only dispatch ledger entities.
//
// The package includes:
//   - Entry: An immutable record of one dispatch attempt, successful or failed
//   - Status: The success/failed outcome of an attempt
//   - FailureReason: The closed classification of why an attempt failed
//
// Key business rules:
//   - Every dispatch attempt is recorded, including failures
//   - Entries are never updated or deleted once recorded
//   - Success entries name a partner and carry no reason; failure entries
//     carry a reason and name no partner
package assignment
