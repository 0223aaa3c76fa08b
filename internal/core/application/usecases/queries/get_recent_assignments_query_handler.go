package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRecentAssignmentsQueryHandler retrieves the latest ledger entries.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetRecentAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetRecentAssignmentsQueryHandler creates a handler for ledger page queries.
// Requires a GORM database connection for query execution.
func NewGetRecentAssignmentsQueryHandler(db *gorm.DB) GetRecentAssignmentsQueryHandler {
	return GetRecentAssignmentsQueryHandler{db: db}
}

// Handle executes the query for the latest ledger entries, newest first.
func (h GetRecentAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetRecentAssignmentsQuery,
) ([]GetRecentAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetRecentAssignmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			partner_id,
			status,
			reason,
			timestamp
		FROM assignments
		ORDER BY seq DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetRecentAssignmentsQueryResponse
		var id uuid.UUID
		var orderID uuid.UUID
		var partnerID *uuid.UUID
		var timestamp time.Time

		err = rows.Scan(&id, &orderID, &partnerID, &response.Status, &response.Reason, &timestamp)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = entryID

		entryOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		response.OrderID = entryOrderID

		if partnerID != nil {
			converted, idErr := kernel.UUIDFromBytes(partnerID[:])
			if idErr != nil {
				return nil, idErr
			}
			response.PartnerID = &converted
		}

		response.Timestamp = timestamp
		entries = append(entries, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
