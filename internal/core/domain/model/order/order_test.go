package order_test

import (
	"testing"

	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/domain/model/order"
	"fastereats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromInt(amount)
	require.NoError(t, err)
	return m
}

func pizzaLine(t *testing.T, qty int, price int64) order.CartLine {
	t.Helper()
	l, err := order.NewCartLine("pizza-1", "Pizza", money(t, price), qty)
	require.NoError(t, err)
	return l
}

func newRestaurant(t *testing.T) order.Restaurant {
	t.Helper()
	r, err := order.NewRestaurant(kernel.NewUUID(), "Luigi's", "1 Main St")
	require.NoError(t, err)
	return r
}

func newCourier(t *testing.T, name string) order.Courier {
	t.Helper()
	c, err := order.NewCourier(kernel.NewUUID(), name, "+15550100")
	require.NoError(t, err)
	return c
}

func placeOrder(t *testing.T, lines ...order.CartLine) *order.Order {
	t.Helper()
	if len(lines) == 0 {
		lines = []order.CartLine{pizzaLine(t, 2, 1000)}
	}
	o, err := order.NewOrder("ORD_20261019_001", kernel.NewUUID(), newRestaurant(t), lines,
		kernel.ZeroMoney, order.Card, "42 Elm St")
	require.NoError(t, err)
	return o
}

func acceptedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := placeOrder(t)
	require.NoError(t, o.Decide(o.Restaurant().ID(), order.DecisionAccept))
	return o
}

func assertCourierInvariant(t *testing.T, o *order.Order) {
	t.Helper()
	assert.Equal(t, o.Status().RequiresCourier(), o.Courier() != nil,
		"courier presence must match status %s", o.Status())
	assert.False(t, o.TotalAmount().Decimal().IsNegative())
}

func TestNewOrder(t *testing.T) {
	t.Run("computes total and starts Placed", func(t *testing.T) {
		o := placeOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, "ORD_20261019_001", o.Number())
		assert.True(t, o.TotalAmount().IsEqual(money(t, 2000)))
		assert.True(t, o.Subtotal().IsEqual(money(t, 2000)))
		assert.True(t, o.Discount().IsZero())
		assert.Nil(t, o.Courier())
		assert.Equal(t, 1, o.Version())
		assertCourierInvariant(t, o)
	})

	t.Run("adds delivery fee", func(t *testing.T) {
		o, err := order.NewOrder("ORD_1", kernel.NewUUID(), newRestaurant(t),
			[]order.CartLine{pizzaLine(t, 1, 1000), pizzaLine(t, 3, 250)}, money(t, 150), order.Cash, "42 Elm St")

		require.NoError(t, err)
		assert.True(t, o.TotalAmount().IsEqual(money(t, 1900)))
		assert.Len(t, o.CartLines(), 2)
	})

	t.Run("records history and raises OrderPlaced", func(t *testing.T) {
		o := placeOrder(t)

		history := o.PendingStatusChanges()
		require.Len(t, history, 1)
		assert.Equal(t, order.Unknown, history[0].From)
		assert.Equal(t, order.Placed, history[0].To)
		assert.True(t, history[0].ActorID.IsEqual(o.CustomerID()))

		events := o.DomainEvents()
		require.Len(t, events, 1)
		placed, ok := events[0].(order.PlacedEvent)
		require.True(t, ok)
		assert.Equal(t, o.Number(), placed.Number)
		assert.Equal(t, "2000.00", placed.TotalAmount)
	})

	t.Run("collects every validation error", func(t *testing.T) {
		o, err := order.NewOrder("", kernel.UUID{}, order.Restaurant{}, nil,
			kernel.ZeroMoney, order.UnknownPaymentMethod, "  ")

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		for _, field := range []string{"orderNumber", "customerId", "restaurantId", "cart", "paymentMethod", "deliveryAddress"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := order.NewCartLine("pizza-1", "Pizza", money(t, 1000), 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("zero value order is not constructed", func(t *testing.T) {
		var o order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_Decide(t *testing.T) {
	t.Run("accept opens the job", func(t *testing.T) {
		o := placeOrder(t)
		o.ClearDomainEvents()

		require.NoError(t, o.Decide(o.Restaurant().ID(), order.DecisionAccept))

		assert.Equal(t, order.Accepted, o.Status())
		assert.True(t, o.Status().IsOpen())
		events := o.DomainEvents()
		require.Len(t, events, 1)
		changed, ok := events[0].(order.StatusChangedEvent)
		require.True(t, ok)
		assert.Equal(t, "Placed", changed.From)
		assert.Equal(t, "Accepted", changed.To)
	})

	t.Run("decline is terminal", func(t *testing.T) {
		o := placeOrder(t)

		require.NoError(t, o.Decide(o.Restaurant().ID(), order.DecisionDecline))
		assert.Equal(t, order.Declined, o.Status())

		err := o.Decide(o.Restaurant().ID(), order.DecisionAccept)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Declined, o.Status())
	})

	t.Run("deciding twice fails", func(t *testing.T) {
		o := acceptedOrder(t)

		err := o.Decide(o.Restaurant().ID(), order.DecisionDecline)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("another restaurant is not the owner", func(t *testing.T) {
		o := placeOrder(t)

		err := o.Decide(kernel.NewUUID(), order.DecisionAccept)

		require.ErrorIs(t, err, errs.ErrNotOwner)
		assert.Equal(t, order.Placed, o.Status())
	})
}

func TestOrder_ApplyDiscount(t *testing.T) {
	t.Run("reduces total", func(t *testing.T) {
		o := placeOrder(t, pizzaLine(t, 1, 1000))

		require.NoError(t, o.ApplyDiscount("DISCOUNT-AB12CD34", money(t, 500)))

		assert.True(t, o.TotalAmount().IsEqual(money(t, 500)))
		assert.Equal(t, "DISCOUNT-AB12CD34", o.CouponCode())
	})

	t.Run("floors at zero", func(t *testing.T) {
		o := placeOrder(t, pizzaLine(t, 1, 300))

		require.NoError(t, o.ApplyDiscount("DISCOUNT-AB12CD34", money(t, 500)))

		assert.True(t, o.TotalAmount().IsZero())
		assertCourierInvariant(t, o)
	})

	t.Run("only once per order", func(t *testing.T) {
		o := placeOrder(t)
		require.NoError(t, o.ApplyDiscount("DISCOUNT-AAAAAAAA", money(t, 100)))

		err := o.ApplyDiscount("DISCOUNT-BBBBBBBB", money(t, 100))

		require.ErrorIs(t, err, errs.ErrCouponIsInvalid)
		assert.True(t, o.TotalAmount().IsEqual(money(t, 1900)))
	})

	t.Run("only while Placed", func(t *testing.T) {
		o := acceptedOrder(t)

		err := o.ApplyDiscount("DISCOUNT-AB12CD34", money(t, 500))

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.True(t, o.Discount().IsZero())
	})
}

func TestOrder_AssignCourier(t *testing.T) {
	t.Run("claims an open job", func(t *testing.T) {
		o := acceptedOrder(t)
		c1 := newCourier(t, "C1")

		require.NoError(t, o.AssignCourier(c1))

		assert.Equal(t, order.AssignedToCourier, o.Status())
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().ID().IsEqual(c1.ID()))
		assertCourierInvariant(t, o)
	})

	t.Run("second claim is AlreadyClaimed", func(t *testing.T) {
		o := acceptedOrder(t)
		c1 := newCourier(t, "C1")
		require.NoError(t, o.AssignCourier(c1))

		err := o.AssignCourier(newCourier(t, "C2"))

		require.ErrorIs(t, err, errs.ErrAlreadyClaimed)
		assert.True(t, o.Courier().ID().IsEqual(c1.ID()))
	})

	t.Run("placed or declined orders are not open", func(t *testing.T) {
		placed := placeOrder(t)
		require.ErrorIs(t, placed.AssignCourier(newCourier(t, "C1")), errs.ErrInvalidTransition)
		assertCourierInvariant(t, placed)

		declined := placeOrder(t)
		require.NoError(t, declined.Decide(declined.Restaurant().ID(), order.DecisionDecline))
		require.ErrorIs(t, declined.AssignCourier(newCourier(t, "C1")), errs.ErrInvalidTransition)
		assertCourierInvariant(t, declined)
	})

	t.Run("zero courier is rejected", func(t *testing.T) {
		o := acceptedOrder(t)

		require.Error(t, o.AssignCourier(order.Courier{}))
		assert.Equal(t, order.Accepted, o.Status())
	})
}

func TestOrder_Advance(t *testing.T) {
	claimed := func(t *testing.T) (*order.Order, order.Courier) {
		t.Helper()
		o := acceptedOrder(t)
		c := newCourier(t, "C1")
		require.NoError(t, o.AssignCourier(c))
		return o, c
	}

	t.Run("full delivery sequence", func(t *testing.T) {
		o, c := claimed(t)

		for _, next := range []order.Status{order.PickedUp, order.InTransit, order.Delivered} {
			require.NoError(t, o.Advance(c.ID(), next))
			assert.Equal(t, next, o.Status())
			assertCourierInvariant(t, o)
		}

		history := o.PendingStatusChanges()
		require.Len(t, history, 6)
		assert.Equal(t, order.Delivered, history[5].To)
	})

	t.Run("skipping states leaves order unchanged", func(t *testing.T) {
		o, c := claimed(t)

		err := o.Advance(c.ID(), order.Delivered)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.AssignedToCourier, o.Status())
	})

	t.Run("other courier is not the owner", func(t *testing.T) {
		o, _ := claimed(t)

		err := o.Advance(kernel.NewUUID(), order.PickedUp)

		require.ErrorIs(t, err, errs.ErrNotOwner)
		assert.Equal(t, order.AssignedToCourier, o.Status())
	})

	t.Run("unclaimed order has no owner", func(t *testing.T) {
		o := acceptedOrder(t)

		require.ErrorIs(t, o.Advance(kernel.NewUUID(), order.PickedUp), errs.ErrNotOwner)
	})
}

func TestRestoreOrder(t *testing.T) {
	base := func(t *testing.T) order.Snapshot {
		return order.Snapshot{
			ID:              kernel.NewUUID(),
			Number:          "ORD_20261019_007",
			CustomerID:      kernel.NewUUID(),
			Restaurant:      newRestaurant(t),
			CartLines:       []order.CartLine{pizzaLine(t, 2, 1000)},
			Subtotal:        money(t, 2000),
			DeliveryFee:     money(t, 100),
			Discount:        money(t, 500),
			PaymentMethod:   order.Card,
			DeliveryAddress: "42 Elm St",
			Status:          order.Accepted,
			Version:         3,
		}
	}

	t.Run("restores state without events", func(t *testing.T) {
		o, err := order.RestoreOrder(base(t))

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, o.Status())
		assert.Equal(t, order.Accepted, o.PersistedStatus())
		assert.Equal(t, 3, o.Version())
		assert.True(t, o.TotalAmount().IsEqual(money(t, 1600)))
		assert.Empty(t, o.DomainEvents())
		assert.Empty(t, o.PendingStatusChanges())
	})

	t.Run("rejects courier without courier status", func(t *testing.T) {
		s := base(t)
		c := newCourier(t, "C1")
		s.Courier = &c

		_, err := order.RestoreOrder(s)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "have a courier")
	})

	t.Run("rejects missing courier in courier status", func(t *testing.T) {
		s := base(t)
		s.Status = order.PickedUp

		_, err := order.RestoreOrder(s)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "have no courier")
	})

	t.Run("mark persisted bumps version and clears history", func(t *testing.T) {
		o, err := order.RestoreOrder(base(t))
		require.NoError(t, err)
		c := newCourier(t, "C1")
		require.NoError(t, o.AssignCourier(c))
		assert.Equal(t, order.Accepted, o.PersistedStatus())

		o.MarkPersisted(o.Version() + 1)

		assert.Equal(t, 4, o.Version())
		assert.Equal(t, order.AssignedToCourier, o.PersistedStatus())
		assert.Empty(t, o.PendingStatusChanges())
	})
}

func TestParsers(t *testing.T) {
	d, err := order.ParseDecision("Accept")
	require.NoError(t, err)
	assert.Equal(t, order.DecisionAccept, d)
	_, err = order.ParseDecision("maybe")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	p, err := order.ParsePaymentMethod("Cash")
	require.NoError(t, err)
	assert.Equal(t, order.Cash, p)
	_, err = order.ParsePaymentMethod("Bitcoin")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
