package ports

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
)

// AssignmentRepository defines the persistence contract for the append-only
// dispatch ledger. The ledger records every dispatch attempt; entries are
// immutable, so the contract deliberately has no update or delete methods.
type AssignmentRepository interface {
	// Add appends a new entry to the ledger.
	Add(ctx context.Context, entry *assignment.Entry) error

	// GetAll retrieves the full ledger in insertion order.
	GetAll(ctx context.Context) ([]*assignment.Entry, error)

	// GetRecent retrieves the latest entries, newest first, capped at limit.
	GetRecent(ctx context.Context, limit int) ([]*assignment.Entry, error)
}
