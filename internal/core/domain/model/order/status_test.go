package order_test

import (
	"testing"

	"fastereats/internal/core/domain/model/order"
	"fastereats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []order.Status{
	order.Placed,
	order.Accepted,
	order.Declined,
	order.AssignedToCourier,
	order.PickedUp,
	order.InTransit,
	order.Delivered,
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range allStatuses {
		require.NoError(t, s.Validate(), s.String())
	}

	for _, s := range []order.Status{order.Unknown, order.Status(-1), order.Status(99)} {
		err := s.Validate()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestStatus_StringRoundTrip(t *testing.T) {
	for _, s := range allStatuses {
		parsed, err := order.ParseStatus(s.String())

		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := order.ParseStatus("Unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Accept(t *testing.T) {
	next, err := order.Placed.Accept()
	require.NoError(t, err)
	assert.Equal(t, order.Accepted, next)

	for _, s := range allStatuses {
		if s == order.Placed {
			continue
		}
		_, err := s.Accept()
		require.ErrorIs(t, err, errs.ErrInvalidTransition, s.String())
	}
}

func TestStatus_Decline(t *testing.T) {
	next, err := order.Placed.Decline()
	require.NoError(t, err)
	assert.Equal(t, order.Declined, next)

	for _, s := range []order.Status{order.Accepted, order.Declined, order.AssignedToCourier, order.PickedUp, order.InTransit, order.Delivered} {
		_, err := s.Decline()
		require.ErrorIs(t, err, errs.ErrInvalidTransition, s.String())
	}
}

func TestStatus_AssignToCourier(t *testing.T) {
	next, err := order.Accepted.AssignToCourier()
	require.NoError(t, err)
	assert.Equal(t, order.AssignedToCourier, next)

	for _, s := range []order.Status{order.Placed, order.Declined, order.AssignedToCourier, order.Delivered} {
		_, err := s.AssignToCourier()
		require.ErrorIs(t, err, errs.ErrInvalidTransition, s.String())
	}
}

func TestStatus_Advance(t *testing.T) {
	t.Run("immediate successors", func(t *testing.T) {
		tests := []struct {
			from, next order.Status
		}{
			{order.AssignedToCourier, order.PickedUp},
			{order.PickedUp, order.InTransit},
			{order.InTransit, order.Delivered},
		}
		for _, tt := range tests {
			got, err := tt.from.Advance(tt.next)

			require.NoError(t, err)
			assert.Equal(t, tt.next, got)
		}
	})

	t.Run("skipping or going back is invalid", func(t *testing.T) {
		tests := []struct {
			from, next order.Status
		}{
			{order.AssignedToCourier, order.Delivered},
			{order.AssignedToCourier, order.InTransit},
			{order.InTransit, order.PickedUp},
			{order.Delivered, order.Delivered},
			{order.Accepted, order.PickedUp},
			{order.PickedUp, order.Declined},
		}
		for _, tt := range tests {
			_, err := tt.from.Advance(tt.next)

			require.ErrorIs(t, err, errs.ErrInvalidTransition, "%s -> %s", tt.from, tt.next)
		}
	})
}

func TestStatus_ValidateCanHaveCourier(t *testing.T) {
	for _, s := range allStatuses {
		if s.RequiresCourier() {
			require.NoError(t, s.ValidateCanHaveCourier(true), s.String())
			require.Error(t, s.ValidateCanHaveCourier(false), s.String())
		} else {
			require.NoError(t, s.ValidateCanHaveCourier(false), s.String())
			require.Error(t, s.ValidateCanHaveCourier(true), s.String())
		}
	}
}

func TestStatus_Flags(t *testing.T) {
	assert.True(t, order.Accepted.IsOpen())
	assert.False(t, order.Placed.IsOpen())
	assert.False(t, order.AssignedToCourier.IsOpen())

	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Declined.IsTerminal())
	assert.False(t, order.InTransit.IsTerminal())

	require.NoError(t, order.Placed.ValidateApplyCoupon())
	require.ErrorIs(t, order.Accepted.ValidateApplyCoupon(), errs.ErrInvalidTransition)
}
