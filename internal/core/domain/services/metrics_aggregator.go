package services

import (
	"sort"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
)

// ReasonCount is one bucket of the failure reason histogram.
type ReasonCount struct {
	Reason assignment.FailureReason
	Count  int
}

// Metrics holds the aggregate dispatch figures computed over the whole
// assignment ledger.
type Metrics struct {
	// TotalAssigned is the count of successful assignment entries.
	TotalAssigned int
	// SuccessRate is the share of successful entries among all entries,
	// expressed as a percentage in [0..100]. Zero for an empty ledger.
	SuccessRate float64
	// AverageTimeMinutes is the mean time from order creation to
	// assignment across successful entries, in minutes. Entries whose
	// order creation time is unknown are excluded from the mean.
	AverageTimeMinutes float64
	// FailureReasons is the failure histogram, largest bucket first.
	FailureReasons []ReasonCount
}

// MetricsAggregator is a domain service that computes dispatch metrics from
// ledger entries. The aggregator is pure; reading the ledger and resolving
// order creation times is the caller's concern.
type MetricsAggregator struct{}

// NewMetricsAggregator creates a new MetricsAggregator instance.
func NewMetricsAggregator() MetricsAggregator {
	return MetricsAggregator{}
}

// Aggregate computes the metrics for the given ledger entries.
// orderCreatedAt maps order identifiers to their creation times; successful
// entries whose order is missing from the map do not contribute to the
// average assignment time.
func (a MetricsAggregator) Aggregate(
	entries []*assignment.Entry,
	orderCreatedAt map[kernel.UUID]time.Time,
) Metrics {
	var (
		metrics      Metrics
		totalMinutes float64
		timed        int
	)

	reasonCounts := make(map[assignment.FailureReason]int)

	for _, entry := range entries {
		if entry.IsSuccess() {
			metrics.TotalAssigned++

			createdAt, ok := orderCreatedAt[entry.OrderID()]
			if !ok {
				continue
			}
			totalMinutes += entry.Timestamp().Sub(createdAt).Minutes()
			timed++
			continue
		}

		if reason := entry.Reason(); reason != nil {
			reasonCounts[*reason]++
		}
	}

	if len(entries) > 0 {
		metrics.SuccessRate = float64(metrics.TotalAssigned) / float64(len(entries)) * 100
	}

	if timed > 0 {
		metrics.AverageTimeMinutes = totalMinutes / float64(timed)
	}

	for reason, count := range reasonCounts {
		metrics.FailureReasons = append(metrics.FailureReasons, ReasonCount{Reason: reason, Count: count})
	}
	sort.Slice(metrics.FailureReasons, func(i, j int) bool {
		if metrics.FailureReasons[i].Count != metrics.FailureReasons[j].Count {
			return metrics.FailureReasons[i].Count > metrics.FailureReasons[j].Count
		}
		return metrics.FailureReasons[i].Reason.String() < metrics.FailureReasons[j].Reason.String()
	})

	return metrics
}
