// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for partner aggregates.
// Provides methods for storing, retrieving, and querying delivery partner
// entities with their complete state including load and performance figures.
type PartnerRepository interface {
	// Add persists a new partner aggregate to storage.
	// The partner must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *partner.Partner) error

	// Update persists changes to an existing partner aggregate.
	// The partner must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *partner.Partner) error

	// Get retrieves a partner aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// GetAll retrieves every registered partner. The pool handed to a
	// dispatch run comes from this method; eligibility is decided in the
	// domain, not in the query.
	GetAll(ctx context.Context) ([]*partner.Partner, error)

	// Delete removes a partner from storage by its unique identifier.
	Delete(ctx context.Context, id kernel.UUID) error
}
