package queries

import (
	"errors"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/guard"
)

var ErrGetAssignmentMetricsQueryIsNotConstructed = errors.New(
	"GetAssignmentMetricsQuery must be created via NewGetAssignmentMetricsQuery constructor",
)

// GetAssignmentMetricsQuery computes aggregate dispatch figures over the
// whole assignment ledger: assignment count, success rate, mean time from
// order creation to assignment, and the failure reason histogram.
//
// Example:
//
//	query := NewGetAssignmentMetricsQuery()
//	handler := NewGetAssignmentMetricsQueryHandler(db)
//
//	metrics, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to compute metrics: %w", err)
//	}
//	fmt.Printf("Success rate: %.1f%%\n", metrics.SuccessRate)
type GetAssignmentMetricsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAssignmentMetricsQuery creates a query to compute dispatch metrics.
// This is a parameterless query aggregating the full ledger.
func NewGetAssignmentMetricsQuery() GetAssignmentMetricsQuery {
	return GetAssignmentMetricsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAssignmentMetricsQueryIsNotConstructed if validation fails.
func (q GetAssignmentMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentMetricsQueryIsNotConstructed)
}

// GetAssignmentMetricsQueryResponse carries the computed dispatch figures.
type GetAssignmentMetricsQueryResponse struct {
	services.Metrics
}
