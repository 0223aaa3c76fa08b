package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetRecentAssignmentsQueryIsNotConstructed = errors.New(
		"GetRecentAssignmentsQuery must be created via NewGetRecentAssignmentsQuery constructor",
	)
	ErrLimitIsInvalid = errors.New("limit must be between 1 and the maximum page size")
)

const (
	// DefaultAssignmentLimit caps the ledger page when the caller does not
	// ask for a specific size.
	DefaultAssignmentLimit = 50

	// MaxAssignmentLimit bounds the page size a caller may request. The
	// ledger grows without bound, so an uncapped limit would let one request
	// pull the whole table through the read model.
	MaxAssignmentLimit = 500
)

// GetRecentAssignmentsQuery retrieves the latest dispatch ledger entries,
// newest first, for the assignment history view.
type GetRecentAssignmentsQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewGetRecentAssignmentsQuery creates a query for the latest ledger entries.
// The limit must be within [1..MaxAssignmentLimit]; use DefaultAssignmentLimit
// for the standard page size.
func NewGetRecentAssignmentsQuery(limit int) (GetRecentAssignmentsQuery, error) {
	query := GetRecentAssignmentsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setLimit(limit); err != nil {
		return GetRecentAssignmentsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRecentAssignmentsQueryIsNotConstructed if validation fails.
func (q GetRecentAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentAssignmentsQueryIsNotConstructed)
}

// Limit returns the requested page size.
func (q GetRecentAssignmentsQuery) Limit() int {
	return q.limit
}

func (q *GetRecentAssignmentsQuery) setLimit(limit int) error {
	if limit <= 0 || limit > MaxAssignmentLimit {
		return ErrLimitIsInvalid
	}

	q.limit = limit
	return nil
}

// GetRecentAssignmentsQueryResponse represents one ledger entry in the read model.
type GetRecentAssignmentsQueryResponse struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	PartnerID *kernel.UUID
	Status    string
	Reason    *string
	Timestamp time.Time
}
