package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetAllPartnersQueryHandler retrieves all partner information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllPartnersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllPartnersQueryHandler creates a handler for partner retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllPartnersQueryHandler(db *gorm.DB) GetAllPartnersQueryHandler {
	return GetAllPartnersQueryHandler{db: db}
}

// Handle executes the query to retrieve all partners.
// Returns a slice of partner read models sorted by name.
// Converts database types to domain types for consistency.
func (h GetAllPartnersQueryHandler) Handle(
	ctx context.Context,
	query GetAllPartnersQuery,
) ([]GetAllPartnersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	partners := make([]GetAllPartnersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			status,
			current_load,
			areas,
			shift_start,
			shift_end,
			rating,
			completed_orders,
			cancelled_orders
		FROM partners
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAllPartnersQueryResponse
		var id uuid.UUID
		var areas pq.StringArray

		err = rows.Scan(
			&id,
			&response.Name,
			&response.Email,
			&response.Phone,
			&response.Status,
			&response.CurrentLoad,
			&areas,
			&response.ShiftStart,
			&response.ShiftEnd,
			&response.Rating,
			&response.CompletedOrders,
			&response.CancelledOrders,
		)
		if err != nil {
			return nil, err
		}

		partnerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = partnerID
		response.Areas = areas

		partners = append(partners, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return partners, nil
}
