package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass validation", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Assigned, order.Picked, order.Delivered} {
			assert.NoError(t, s.Validate(), "status: %s", s)
		}
	})

	t.Run("invalid statuses fail validation", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(99), order.Status(-1)} {
			assert.Error(t, s.Validate(), "status: %d", int(s))
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Pending, "pending"},
		{order.Assigned, "assigned"},
		{order.Picked, "picked"},
		{order.Delivered, "delivered"},
		{order.Unknown, "unknown"},
		{order.Status(42), "unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses valid status names", func(t *testing.T) {
		for _, name := range []string{"pending", "assigned", "picked", "delivered"} {
			status, err := order.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		for _, name := range []string{"", "unknown", "Pending", "cancelled"} {
			_, err := order.StatusFromString(name)
			assert.Error(t, err, "input: %q", name)
		}
	})
}

func TestStatus_Assign(t *testing.T) {
	t.Run("pending can be assigned", func(t *testing.T) {
		next, err := order.Pending.Assign()

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, next)
	})

	t.Run("already dispatched orders cannot be assigned again", func(t *testing.T) {
		for _, s := range []order.Status{order.Assigned, order.Picked, order.Delivered, order.Unknown} {
			_, err := s.Assign()
			require.Error(t, err, "status: %s", s)
		}
	})
}

func TestStatus_ProgressTo(t *testing.T) {
	t.Run("allowed forward transitions", func(t *testing.T) {
		testCases := []struct {
			from order.Status
			to   order.Status
		}{
			{order.Assigned, order.Picked},
			{order.Assigned, order.Delivered},
			{order.Picked, order.Delivered},
		}

		for _, tc := range testCases {
			next, err := tc.from.ProgressTo(tc.to)
			require.NoError(t, err, "%s -> %s", tc.from, tc.to)
			assert.Equal(t, tc.to, next)
		}
	})

	t.Run("regressions and invalid sources are rejected", func(t *testing.T) {
		testCases := []struct {
			from order.Status
			to   order.Status
		}{
			{order.Picked, order.Assigned},
			{order.Delivered, order.Picked},
			{order.Assigned, order.Assigned},
			{order.Pending, order.Picked},
			{order.Pending, order.Assigned},
			{order.Delivered, order.Delivered},
		}

		for _, tc := range testCases {
			_, err := tc.from.ProgressTo(tc.to)
			require.Error(t, err, "%s -> %s", tc.from, tc.to)
		}
	})
}

func TestStatus_ValidateCanHaveAssignee(t *testing.T) {
	t.Run("pending must not have an assignee", func(t *testing.T) {
		require.NoError(t, order.Pending.ValidateCanHaveAssignee(false))
		require.Error(t, order.Pending.ValidateCanHaveAssignee(true))
	})

	t.Run("dispatched statuses must have an assignee", func(t *testing.T) {
		for _, s := range []order.Status{order.Assigned, order.Picked, order.Delivered} {
			require.NoError(t, s.ValidateCanHaveAssignee(true), "status: %s", s)
			require.Error(t, s.ValidateCanHaveAssignee(false), "status: %s", s)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Assigned.IsTerminal())
	assert.False(t, order.Picked.IsTerminal())
}
