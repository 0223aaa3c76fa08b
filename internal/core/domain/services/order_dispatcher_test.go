package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noon = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testOrder(t *testing.T, area string) *order.Order {
	t.Helper()
	customer, err := order.NewCustomer("Asha Rao", "+91-98200-11111", "14 Hill Road")
	require.NoError(t, err)
	item, err := order.NewItem("Masala Dosa", 2, 120)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), "ORD-1001", customer, area, []order.Item{item},
		noon.Add(time.Hour), noon.Add(-30*time.Minute),
	)
	require.NoError(t, err)
	return o
}

func testPoolPartner(t *testing.T, name string, areas []string, shiftStart, shiftEnd string) *partner.Partner {
	t.Helper()
	shift, err := partner.ParseShiftWindow(shiftStart, shiftEnd)
	require.NoError(t, err)
	p, err := partner.NewPartner(
		kernel.NewUUID(), name, name+"@example.com", "+91-98200-00000", areas, shift,
	)
	require.NoError(t, err)
	return p
}

func restoredPartner(
	t *testing.T,
	id kernel.UUID,
	load int,
	rating float64,
) *partner.Partner {
	t.Helper()
	shift, err := partner.ParseShiftWindow("09:00", "21:00")
	require.NoError(t, err)
	perf, err := partner.NewPerformance(rating, 10, 0)
	require.NoError(t, err)
	p, err := partner.RestorePartner(
		id, "Restored", "restored@example.com", "123",
		partner.StatusActive, load, []string{"Bandra"}, shift, perf,
	)
	require.NoError(t, err)
	return p
}

func TestOrderDispatcher_Dispatch(t *testing.T) {
	t.Run("assigns the order to the least loaded partner", func(t *testing.T) {
		o := testOrder(t, "Bandra")
		busy := restoredPartner(t, kernel.NewUUID(), 2, 5)
		idle := restoredPartner(t, kernel.NewUUID(), 0, 3)

		dispatcher := services.NewOrderDispatcher()
		result, err := dispatcher.Dispatch(o, []*partner.Partner{busy, idle}, noon)

		require.NoError(t, err)
		assert.True(t, result.IsEqual(idle), "lower load wins over higher rating")
		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.AssignedTo())
		assert.True(t, o.AssignedTo().IsEqual(idle.ID()))
		assert.Equal(t, 1, idle.CurrentLoad())
		assert.Equal(t, 2, busy.CurrentLoad())
	})

	t.Run("breaks load ties by rating", func(t *testing.T) {
		o := testOrder(t, "Bandra")
		lowRated := restoredPartner(t, kernel.NewUUID(), 1, 3.5)
		highRated := restoredPartner(t, kernel.NewUUID(), 1, 4.8)

		dispatcher := services.NewOrderDispatcher()
		result, err := dispatcher.Dispatch(o, []*partner.Partner{lowRated, highRated}, noon)

		require.NoError(t, err)
		assert.True(t, result.IsEqual(highRated))
	})

	t.Run("breaks full ties by ascending identifier", func(t *testing.T) {
		idA, err := kernel.UUIDFromString("11111111-1111-1111-1111-111111111111")
		require.NoError(t, err)
		idB, err := kernel.UUIDFromString("22222222-2222-2222-2222-222222222222")
		require.NoError(t, err)

		first := restoredPartner(t, idA, 1, 4.0)
		second := restoredPartner(t, idB, 1, 4.0)

		dispatcher := services.NewOrderDispatcher()

		// same winner regardless of pool order
		o1 := testOrder(t, "Bandra")
		result, err := dispatcher.Dispatch(o1, []*partner.Partner{second, first}, noon)
		require.NoError(t, err)
		assert.True(t, result.IsEqual(first))

		o2 := testOrder(t, "Bandra")
		firstAgain := restoredPartner(t, idA, 1, 4.0)
		secondAgain := restoredPartner(t, idB, 1, 4.0)
		result, err = dispatcher.Dispatch(o2, []*partner.Partner{firstAgain, secondAgain}, noon)
		require.NoError(t, err)
		assert.True(t, result.IsEqual(firstAgain))
	})

	t.Run("returns ErrNoEligiblePartner for an empty pool", func(t *testing.T) {
		o := testOrder(t, "Bandra")
		dispatcher := services.NewOrderDispatcher()

		result, err := dispatcher.Dispatch(o, nil, noon)

		require.ErrorIs(t, err, services.ErrNoEligiblePartner)
		assert.Nil(t, result)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.AssignedTo())
	})

	t.Run("skips ineligible partners", func(t *testing.T) {
		o := testOrder(t, "Bandra")

		offArea := testPoolPartner(t, "offarea", []string{"Colaba"}, "09:00", "21:00")
		offShift := testPoolPartner(t, "offshift", []string{"Bandra"}, "00:00", "06:00")
		inactive := testPoolPartner(t, "inactive", []string{"Bandra"}, "09:00", "21:00")
		inactive.Deactivate()
		eligible := testPoolPartner(t, "eligible", []string{"Bandra"}, "09:00", "21:00")

		dispatcher := services.NewOrderDispatcher()
		result, err := dispatcher.Dispatch(
			o, []*partner.Partner{offArea, offShift, inactive, eligible}, noon,
		)

		require.NoError(t, err)
		assert.True(t, result.IsEqual(eligible))
	})

	t.Run("rejects an order that is not pending", func(t *testing.T) {
		o := testOrder(t, "Bandra")
		require.NoError(t, o.Assign(kernel.NewUUID(), noon))

		dispatcher := services.NewOrderDispatcher()
		_, err := dispatcher.Dispatch(o, []*partner.Partner{testPoolPartner(t, "p", []string{"Bandra"}, "09:00", "21:00")}, noon)

		require.Error(t, err)
	})
}

func TestOrderDispatcher_Diagnose(t *testing.T) {
	dispatcher := services.NewOrderDispatcher()

	t.Run("all at capacity yields CAPACITY_EXCEEDED", func(t *testing.T) {
		o := testOrder(t, "Bandra")
		pool := []*partner.Partner{
			restoredPartner(t, kernel.NewUUID(), partner.MaxConcurrentLoad, 5),
			restoredPartner(t, kernel.NewUUID(), partner.MaxConcurrentLoad, 4),
		}

		reason := dispatcher.Diagnose(o, pool, noon)
		assert.True(t, reason.IsEqual(assignment.ReasonCapacityExceeded))
	})

	t.Run("no coverage yields AREA_MISMATCH", func(t *testing.T) {
		o := testOrder(t, "Powai")
		pool := []*partner.Partner{
			testPoolPartner(t, "a", []string{"Bandra"}, "09:00", "21:00"),
			testPoolPartner(t, "b", []string{"Colaba"}, "09:00", "21:00"),
		}

		reason := dispatcher.Diagnose(o, pool, noon)
		assert.True(t, reason.IsEqual(assignment.ReasonAreaMismatch))
	})

	t.Run("everyone off shift yields SHIFT_MISMATCH", func(t *testing.T) {
		o := testOrder(t, "Bandra")
		pool := []*partner.Partner{
			testPoolPartner(t, "a", []string{"Bandra"}, "00:00", "06:00"),
			testPoolPartner(t, "b", []string{"Bandra"}, "22:00", "23:00"),
		}

		reason := dispatcher.Diagnose(o, pool, noon)
		assert.True(t, reason.IsEqual(assignment.ReasonShiftMismatch))
	})

	t.Run("mixed failures yield NO_ELIGIBLE_PARTNER", func(t *testing.T) {
		o := testOrder(t, "Bandra")
		pool := []*partner.Partner{
			testPoolPartner(t, "offarea", []string{"Colaba"}, "09:00", "21:00"),
			testPoolPartner(t, "offshift", []string{"Bandra"}, "00:00", "06:00"),
		}

		reason := dispatcher.Diagnose(o, pool, noon)
		assert.True(t, reason.IsEqual(assignment.ReasonNoEligiblePartner))
	})

	t.Run("compound failure yields NO_ELIGIBLE_PARTNER", func(t *testing.T) {
		o := testOrder(t, "Bandra")
		// wrong area AND off shift at once
		pool := []*partner.Partner{
			testPoolPartner(t, "both", []string{"Colaba"}, "00:00", "06:00"),
		}

		reason := dispatcher.Diagnose(o, pool, noon)
		assert.True(t, reason.IsEqual(assignment.ReasonNoEligiblePartner))
	})

	t.Run("empty pool yields NO_ELIGIBLE_PARTNER", func(t *testing.T) {
		o := testOrder(t, "Bandra")
		reason := dispatcher.Diagnose(o, nil, noon)
		assert.True(t, reason.IsEqual(assignment.ReasonNoEligiblePartner))
	})

	t.Run("inactive partners do not shape the reason", func(t *testing.T) {
		o := testOrder(t, "Bandra")
		inactive := testPoolPartner(t, "inactive", []string{"Colaba"}, "00:00", "06:00")
		inactive.Deactivate()
		pool := []*partner.Partner{
			inactive,
			restoredPartner(t, kernel.NewUUID(), partner.MaxConcurrentLoad, 5),
		}

		reason := dispatcher.Diagnose(o, pool, noon)
		assert.True(t, reason.IsEqual(assignment.ReasonCapacityExceeded))
	})
}
