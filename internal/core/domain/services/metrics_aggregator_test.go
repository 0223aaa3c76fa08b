package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func successEntry(t *testing.T, orderID kernel.UUID, at time.Time) *assignment.Entry {
	t.Helper()
	entry, err := assignment.NewSuccessEntry(orderID, kernel.NewUUID(), at)
	require.NoError(t, err)
	return entry
}

func failureEntry(t *testing.T, reason assignment.FailureReason, at time.Time) *assignment.Entry {
	t.Helper()
	entry, err := assignment.NewFailureEntry(kernel.NewUUID(), reason, at)
	require.NoError(t, err)
	return entry
}

func TestMetricsAggregator_Aggregate(t *testing.T) {
	aggregator := services.NewMetricsAggregator()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty ledger yields zero metrics", func(t *testing.T) {
		metrics := aggregator.Aggregate(nil, nil)

		assert.Equal(t, 0, metrics.TotalAssigned)
		assert.InDelta(t, 0, metrics.SuccessRate, 0.001)
		assert.InDelta(t, 0, metrics.AverageTimeMinutes, 0.001)
		assert.Empty(t, metrics.FailureReasons)
	})

	t.Run("computes counts, rate, and average assignment time", func(t *testing.T) {
		orderA := kernel.NewUUID()
		orderB := kernel.NewUUID()

		entries := []*assignment.Entry{
			successEntry(t, orderA, base.Add(10*time.Minute)),
			successEntry(t, orderB, base.Add(30*time.Minute)),
			failureEntry(t, assignment.ReasonAreaMismatch, base),
			failureEntry(t, assignment.ReasonAreaMismatch, base),
			failureEntry(t, assignment.ReasonCapacityExceeded, base),
		}
		createdAt := map[kernel.UUID]time.Time{
			orderA: base,
			orderB: base,
		}

		metrics := aggregator.Aggregate(entries, createdAt)

		assert.Equal(t, 2, metrics.TotalAssigned)
		assert.InDelta(t, 40.0, metrics.SuccessRate, 0.001)
		assert.InDelta(t, 20.0, metrics.AverageTimeMinutes, 0.001)

		require.Len(t, metrics.FailureReasons, 2)
		assert.True(t, metrics.FailureReasons[0].Reason.IsEqual(assignment.ReasonAreaMismatch))
		assert.Equal(t, 2, metrics.FailureReasons[0].Count)
		assert.True(t, metrics.FailureReasons[1].Reason.IsEqual(assignment.ReasonCapacityExceeded))
		assert.Equal(t, 1, metrics.FailureReasons[1].Count)
	})

	t.Run("success rate stays within bounds", func(t *testing.T) {
		entries := []*assignment.Entry{
			successEntry(t, kernel.NewUUID(), base),
			successEntry(t, kernel.NewUUID(), base),
		}

		metrics := aggregator.Aggregate(entries, nil)

		assert.InDelta(t, 100.0, metrics.SuccessRate, 0.001)
	})

	t.Run("entries without a resolvable order are excluded from the average", func(t *testing.T) {
		known := kernel.NewUUID()
		unknown := kernel.NewUUID()

		entries := []*assignment.Entry{
			successEntry(t, known, base.Add(15*time.Minute)),
			successEntry(t, unknown, base.Add(4*time.Hour)),
		}
		createdAt := map[kernel.UUID]time.Time{known: base}

		metrics := aggregator.Aggregate(entries, createdAt)

		assert.Equal(t, 2, metrics.TotalAssigned)
		assert.InDelta(t, 15.0, metrics.AverageTimeMinutes, 0.001)
	})

	t.Run("histogram ties break on reason name", func(t *testing.T) {
		entries := []*assignment.Entry{
			failureEntry(t, assignment.ReasonShiftMismatch, base),
			failureEntry(t, assignment.ReasonAreaMismatch, base),
		}

		metrics := aggregator.Aggregate(entries, nil)

		require.Len(t, metrics.FailureReasons, 2)
		assert.True(t, metrics.FailureReasons[0].Reason.IsEqual(assignment.ReasonAreaMismatch))
		assert.True(t, metrics.FailureReasons[1].Reason.IsEqual(assignment.ReasonShiftMismatch))
	})
}
