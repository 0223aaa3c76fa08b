package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAssignmentMetricsQueryHandler computes dispatch metrics from the ledger.
// Reads raw ledger rows joined with order creation times and delegates the
// arithmetic to the domain aggregator.
type GetAssignmentMetricsQueryHandler struct {
	db         *gorm.DB
	aggregator services.MetricsAggregator
}

// NewGetAssignmentMetricsQueryHandler creates a handler for metrics queries.
// Requires a GORM database connection for query execution.
func NewGetAssignmentMetricsQueryHandler(db *gorm.DB) GetAssignmentMetricsQueryHandler {
	return GetAssignmentMetricsQueryHandler{
		db:         db,
		aggregator: services.NewMetricsAggregator(),
	}
}

// Handle executes the metrics query.
// Ledger entries whose order no longer resolves still count toward totals
// and the success rate; they are only excluded from the time average.
func (h GetAssignmentMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentMetricsQuery,
) (GetAssignmentMetricsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAssignmentMetricsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.order_id,
			a.partner_id,
			a.status,
			a.reason,
			a.timestamp,
			o.created_at
		FROM assignments a
		LEFT JOIN orders o ON o.id = a.order_id
		ORDER BY a.seq
	`).Rows()
	if err != nil {
		return GetAssignmentMetricsQueryResponse{}, err
	}
	defer rows.Close()

	var entries []*assignment.Entry
	orderCreatedAt := make(map[kernel.UUID]time.Time)

	for rows.Next() {
		var (
			id        uuid.UUID
			orderID   uuid.UUID
			partnerID *uuid.UUID
			status    string
			reason    *string
			timestamp time.Time
			createdAt *time.Time
		)

		err = rows.Scan(&id, &orderID, &partnerID, &status, &reason, &timestamp, &createdAt)
		if err != nil {
			return GetAssignmentMetricsQueryResponse{}, err
		}

		entry, entryErr := restoreLedgerEntry(id, orderID, partnerID, status, reason, timestamp)
		if entryErr != nil {
			return GetAssignmentMetricsQueryResponse{}, entryErr
		}
		entries = append(entries, entry)

		if createdAt != nil {
			orderCreatedAt[entry.OrderID()] = *createdAt
		}
	}

	if err = rows.Err(); err != nil {
		return GetAssignmentMetricsQueryResponse{}, err
	}

	return GetAssignmentMetricsQueryResponse{
		Metrics: h.aggregator.Aggregate(entries, orderCreatedAt),
	}, nil
}

// restoreLedgerEntry converts one raw ledger row into a domain entry.
func restoreLedgerEntry(
	id uuid.UUID,
	orderID uuid.UUID,
	partnerID *uuid.UUID,
	status string,
	reason *string,
	timestamp time.Time,
) (*assignment.Entry, error) {
	entryID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	entryOrderID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return nil, err
	}

	var entryPartnerID *kernel.UUID
	if partnerID != nil {
		converted, convErr := kernel.UUIDFromBytes(partnerID[:])
		if convErr != nil {
			return nil, convErr
		}
		entryPartnerID = &converted
	}

	entryStatus, err := assignment.StatusFromString(status)
	if err != nil {
		return nil, err
	}

	var entryReason *assignment.FailureReason
	if reason != nil {
		converted, convErr := assignment.FailureReasonFromString(*reason)
		if convErr != nil {
			return nil, convErr
		}
		entryReason = &converted
	}

	return assignment.RestoreEntry(entryID, entryOrderID, entryPartnerID, entryStatus, entryReason, timestamp)
}
