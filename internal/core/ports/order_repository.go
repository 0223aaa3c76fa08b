package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPending retrieves every order still awaiting dispatch, ordered
	// by scheduled delivery time ascending with creation time as the
	// tie-break. Dispatch runs consume orders in exactly this sequence.
	GetAllPending(ctx context.Context) ([]*order.Order, error)

	// GetAll retrieves every order regardless of status, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
